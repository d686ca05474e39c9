package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSeatingTable(t *testing.T) {
	tests := []struct {
		count    int
		index    int
		region   Region
		rotation int
	}{
		{2, 0, RegionTopHalf, 180},
		{2, 1, RegionBottomHalf, 0},
		{3, 0, RegionTopLeft, 90},
		{3, 1, RegionTopRight, 270},
		{3, 2, RegionBottomCenter, 0},
		{4, 0, RegionTopLeft, 90},
		{4, 1, RegionTopRight, 270},
		{4, 2, RegionBottomLeft, 90},
		{4, 3, RegionBottomRight, 270},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d players seat %d", tt.count, tt.index), func(t *testing.T) {
			got := Resolve(tt.count, tt.index)
			assert.Equal(t, Placement{Region: tt.region, RotationDegrees: tt.rotation}, got)
			assert.Equal(t, got, Resolve(tt.count, tt.index), "resolve must be deterministic")
		})
	}
}

func TestResolveFallback(t *testing.T) {
	inputs := [][2]int{
		{0, 0}, {1, 0}, {5, 0}, {-2, 1},
		{2, 2}, {3, 3}, {4, 4}, {4, -1}, {2, 100},
	}
	for _, in := range inputs {
		got := Resolve(in[0], in[1])
		assert.Equal(t, FallbackPlacement, got, "resolve(%d, %d)", in[0], in[1])
	}
	assert.Equal(t, RegionCentered, FallbackPlacement.Region)
	assert.Equal(t, 0, FallbackPlacement.RotationDegrees)
}

func TestLayoutTilesScreen(t *testing.T) {
	for _, count := range []int{2, 3, 4} {
		t.Run(fmt.Sprintf("%d players", count), func(t *testing.T) {
			seats := Layout(count)
			require.Len(t, seats, count)

			total := 0.0
			for i, a := range seats {
				assert.Equal(t, Resolve(count, i), a)
				ba := a.Region.Bounds()
				total += ba.Area()
				for j := i + 1; j < len(seats); j++ {
					assert.False(t, ba.Overlaps(seats[j].Region.Bounds()), "seats %d and %d overlap", i, j)
				}
			}
			assert.InDelta(t, 1.0, total, 1e-9)
		})
	}
}

func TestLayoutReturnsCopy(t *testing.T) {
	seats := Layout(2)
	seats[0].RotationDegrees = 45

	assert.Equal(t, 180, Resolve(2, 0).RotationDegrees)
	assert.Nil(t, Layout(7))
}

func TestRegionBounds(t *testing.T) {
	assert.Equal(t, Rect{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5}, RegionBottomRight.Bounds())
	assert.Equal(t, Rect{X: 0, Y: 0.5, Width: 1, Height: 0.5}, RegionBottomCenter.Bounds())
	assert.Equal(t, RegionCentered.Bounds(), Region("nowhere").Bounds())
}
