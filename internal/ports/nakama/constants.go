package nakama

const (
	// RpcCreateTable is the Nakama RPC id clients call to get a table to host.
	RpcCreateTable = "create_table"
	// RpcSeatingLayout returns the seating geometry for a player count.
	RpcSeatingLayout = "seating_layout"
	// RpcTableSnapshot returns the current view of a running table.
	RpcTableSnapshot = "table_snapshot"

	// MatchNameTable is the authoritative match handler name registered with Nakama.
	MatchNameTable = "lifecounter_table"

	// GameLabel identifies lifecounter tables in match labels.
	GameLabel = "lifecounter"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpSetPlayerCount  int64 = 1
	OpAdjustLife      int64 = 2
	OpAdjustPoison    int64 = 3
	OpSetPlayerName   int64 = 4
	OpApplySettings   int64 = 5
	OpResetCounters   int64 = 6
	OpRequestSnapshot int64 = 7
	OpApplyFormat     int64 = 8

	// Server -> Client events
	OpRosterSnapshot int64 = 100
	OpTableError     int64 = 199
)

// Runtime env keys read at match init.
const (
	envPlayerCount  = "lifecounter_player_count"
	envStartingLife = "lifecounter_starting_life"
)

const (
	tableConfigPath = "data/table_config.json"

	// tableTickRate is the match loop frequency in ticks per second.
	tableTickRate = 1
	// tableIdleTicks is how long a table survives without its host.
	tableIdleTicks = 300

	signalSnapshot = "snapshot"
)
