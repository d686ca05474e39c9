package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"lifecounter/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcCreateTable, rpcCreateTable); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcSeatingLayout, rpcSeatingLayout); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcTableSnapshot, rpcTableSnapshot)
}

// SeatingLayoutResponse describes the panel geometry for one player count.
type SeatingLayoutResponse struct {
	PlayerCount int          `json:"player_count"`
	Seats       []SeatLayout `json:"seats"`
}

type SeatLayout struct {
	Index           int        `json:"index"`
	Region          string     `json:"region"`
	RotationDegrees int        `json:"rotation_degrees"`
	Bounds          SeatBounds `json:"bounds"`
}

type SeatBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// rpcSeatingLayout returns the seating table for a player count.
//
// Payload: {"player_count": 3}
func rpcSeatingLayout(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req struct {
		PlayerCount int `json:"player_count"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	seats := domain.Layout(req.PlayerCount)
	if seats == nil {
		return "", runtime.NewError("player_count must be 2, 3 or 4", 3)
	}

	resp := SeatingLayoutResponse{PlayerCount: req.PlayerCount, Seats: make([]SeatLayout, 0, len(seats))}
	for i, s := range seats {
		b := s.Region.Bounds()
		resp.Seats = append(resp.Seats, SeatLayout{
			Index:           i,
			Region:          string(s.Region),
			RotationDegrees: s.RotationDegrees,
			Bounds:          SeatBounds{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
		})
	}

	b, err := json.Marshal(resp)
	if err != nil {
		logger.Error("rpcSeatingLayout: Failed to marshal response: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}
	return string(b), nil
}

// tableSignaler is the subset of runtime.NakamaModule used to read running tables.
type tableSignaler interface {
	MatchSignal(ctx context.Context, id string, data string) (string, error)
}

func rpcTableSnapshot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return tableSnapshot(ctx, logger, nk, payload)
}

// tableSnapshot returns the current view of a table as JSON.
//
// Payload: {"match_id": "..."}
func tableSnapshot(ctx context.Context, logger runtime.Logger, nk tableSignaler, payload string) (string, error) {
	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.MatchID == "" {
		return "", runtime.NewError("match_id required", 3)
	}

	snapshot, err := nk.MatchSignal(ctx, req.MatchID, signalSnapshot)
	if err != nil {
		logger.Warn("tableSnapshot: Signal to %s failed: %v", req.MatchID, err)
		return "", runtime.NewError("table not found", 5) // NOT_FOUND
	}
	if snapshot == "" {
		return "", runtime.NewError("table not found", 5)
	}
	return snapshot, nil
}
