package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	r := DefaultRoster()

	assert.Equal(t, 2, r.PlayerCount())
	assert.Equal(t, 40, r.StartingLife())
	for _, p := range r.Players() {
		assert.Equal(t, PlayerRecord{Life: 40}, p)
	}
}

func TestNewRoster(t *testing.T) {
	r, err := NewRoster(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, r.PlayerCount())
	assert.Equal(t, 20, r.StartingLife())

	r, err = NewRoster(2, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStartingLife, r.StartingLife(), "non-positive life falls back to default")

	_, err = NewRoster(5, 20)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
}

func TestSetPlayerCount(t *testing.T) {
	base := DefaultRoster().ApplySettings("25")
	base, err := base.SetPlayerName(0, "Alice")
	require.NoError(t, err)
	base, err = base.AdjustLife(1, -3)
	require.NoError(t, err)

	for _, n := range []int{2, 3, 4} {
		r, err := base.SetPlayerCount(n)
		require.NoError(t, err)
		require.Equal(t, n, r.PlayerCount())
		assert.Equal(t, 25, r.StartingLife())
		for i, p := range r.Players() {
			assert.Equal(t, PlayerRecord{Life: 25}, p, "seat %d should be fresh", i)
		}
	}
}

func TestSetPlayerCountRejectsUnsupportedCounts(t *testing.T) {
	r := DefaultRoster()
	for _, n := range []int{-1, 0, 1, 5, 100} {
		got, err := r.SetPlayerCount(n)
		assert.ErrorIs(t, err, ErrInvalidPlayerCount, "n=%d", n)
		assert.Equal(t, r, got, "roster must be unchanged for n=%d", n)
	}
}

func TestResizedRecordsAreIndependent(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(4)
	require.NoError(t, err)

	r, err = r.AdjustLife(0, 10)
	require.NoError(t, err)
	r, err = r.SetPlayerName(0, "Solo")
	require.NoError(t, err)

	players := r.Players()
	assert.Equal(t, 50, players[0].Life)
	for i := 1; i < len(players); i++ {
		assert.Equal(t, PlayerRecord{Life: 40}, players[i])
	}
}

func TestAdjustLifeTouchesOneRecord(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(4)
	require.NoError(t, err)
	r, err = r.SetPlayerName(3, "Dana")
	require.NoError(t, err)

	deltas := []int{1, -1, 7, -1000, 1 << 20}
	for i := 0; i < r.PlayerCount(); i++ {
		for _, d := range deltas {
			before := r.Players()
			next, err := r.AdjustLife(i, d)
			require.NoError(t, err)

			after := next.Players()
			assert.Equal(t, before[i].Life+d, after[i].Life)
			for j := range after {
				if j == i {
					continue
				}
				assert.Equal(t, before[j], after[j], "seat %d changed while adjusting %d", j, i)
			}
		}
	}
}

func TestAdjustLifeIsUnclamped(t *testing.T) {
	r, err := DefaultRoster().AdjustLife(0, -45)
	require.NoError(t, err)
	p, err := r.Player(0)
	require.NoError(t, err)
	assert.Equal(t, -5, p.Life)

	r, err = r.AdjustLife(1, 9960)
	require.NoError(t, err)
	p, err = r.Player(1)
	require.NoError(t, err)
	assert.Equal(t, 10000, p.Life)
}

func TestAdjustPoison(t *testing.T) {
	r, err := DefaultRoster().AdjustPoison(1, 3)
	require.NoError(t, err)
	r, err = r.AdjustPoison(0, -2)
	require.NoError(t, err)

	players := r.Players()
	assert.Equal(t, -2, players[0].Poison, "negative poison is a valid transient state")
	assert.Equal(t, 3, players[1].Poison)
	assert.Equal(t, 40, players[0].Life)
	assert.Equal(t, 40, players[1].Life)
}

func TestIndexPreconditions(t *testing.T) {
	r := DefaultRoster()
	for _, idx := range []int{-1, 2, 3} {
		_, err := r.AdjustLife(idx, 1)
		assert.ErrorIs(t, err, ErrInvalidPlayerIndex)
		_, err = r.AdjustPoison(idx, 1)
		assert.ErrorIs(t, err, ErrInvalidPlayerIndex)
		_, err = r.SetPlayerName(idx, "x")
		assert.ErrorIs(t, err, ErrInvalidPlayerIndex)
		_, err = r.Player(idx)
		assert.ErrorIs(t, err, ErrInvalidPlayerIndex)
	}
}

func TestSetPlayerName(t *testing.T) {
	r, err := DefaultRoster().SetPlayerName(1, "  Bob ")
	require.NoError(t, err)
	p, err := r.Player(1)
	require.NoError(t, err)
	assert.Equal(t, "  Bob ", p.Name, "names are stored verbatim")
	assert.Equal(t, "  Bob ", p.DisplayName(1))

	r, err = r.SetPlayerName(1, "")
	require.NoError(t, err)
	p, err = r.Player(1)
	require.NoError(t, err)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "Player 2", p.DisplayName(1))
}

func TestApplySettings(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(3)
	require.NoError(t, err)
	r, err = r.SetPlayerName(2, "Cleo")
	require.NoError(t, err)
	r, err = r.AdjustLife(0, -12)
	require.NoError(t, err)
	r, err = r.AdjustPoison(1, 4)
	require.NoError(t, err)

	applied := r.ApplySettings("7")
	assert.Equal(t, 7, applied.StartingLife())
	assert.Equal(t, 3, applied.PlayerCount())
	for i, p := range applied.Players() {
		assert.Equal(t, 7, p.Life)
		assert.Equal(t, 0, p.Poison)
		assert.Equal(t, r.Players()[i].Name, p.Name)
	}
}

func TestApplySettingsFallsBackToDefault(t *testing.T) {
	start := DefaultRoster().ApplySettings("12")
	for _, input := range []string{"abc", "", "0", "-5", "7abc", "1.5", "99999999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			r := start.ApplySettings(input)
			assert.Equal(t, 40, r.StartingLife())
			for _, p := range r.Players() {
				assert.Equal(t, 40, p.Life)
				assert.Equal(t, 0, p.Poison)
			}
		})
	}
}

func TestResetCountersIsIdempotent(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(4)
	require.NoError(t, err)
	r, err = r.SetPlayerName(0, "Ann")
	require.NoError(t, err)
	r, err = r.AdjustLife(2, -17)
	require.NoError(t, err)
	r, err = r.AdjustPoison(3, 6)
	require.NoError(t, err)

	once := r.ResetCounters()
	twice := once.ResetCounters()

	assert.Equal(t, once, twice)
	assert.Equal(t, 4, once.PlayerCount())
	assert.Equal(t, 40, once.StartingLife())
	players := once.Players()
	assert.Equal(t, "Ann", players[0].Name)
	for _, p := range players {
		assert.Equal(t, 40, p.Life)
		assert.Equal(t, 0, p.Poison)
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(3)
	require.NoError(t, err)
	snapshot := r.Players()

	_, err = r.AdjustLife(0, 5)
	require.NoError(t, err)
	_, err = r.AdjustPoison(1, 1)
	require.NoError(t, err)
	_, err = r.SetPlayerName(2, "Zed")
	require.NoError(t, err)
	_ = r.ApplySettings("10")
	_ = r.ResetCounters()

	assert.Equal(t, snapshot, r.Players())
	assert.Equal(t, 40, r.StartingLife())
}

func TestPlayersReturnsCopy(t *testing.T) {
	r := DefaultRoster()
	players := r.Players()
	players[0].Life = 1

	p, err := r.Player(0)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Life)
}

func TestFourPlayerDamageScenario(t *testing.T) {
	r, err := DefaultRoster().SetPlayerCount(4)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		r, err = r.AdjustLife(2, -5)
		require.NoError(t, err)
	}

	players := r.Players()
	assert.Equal(t, r.StartingLife()-25, players[2].Life)
	for _, i := range []int{0, 1, 3} {
		assert.Equal(t, r.StartingLife(), players[i].Life)
	}
}

func TestParseStartingLife(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "7", want: 7, ok: true},
		{input: " 20 ", want: 20, ok: true},
		{input: "+30", want: 30, ok: true},
		{input: "abc", want: DefaultStartingLife},
		{input: "", want: DefaultStartingLife},
		{input: "0", want: DefaultStartingLife},
		{input: "-1", want: DefaultStartingLife},
	}
	for _, tt := range tests {
		got, ok := ParseStartingLife(tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
	}
}
