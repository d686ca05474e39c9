package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"lifecounter/internal/domain"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// CreateTableResponse is the payload returned to clients requesting a table to host.
type CreateTableResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// tableMatchmaker is the subset of runtime.NakamaModule used to find or create tables.
type tableMatchmaker interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

func rpcCreateTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return createTable(ctx, logger, nk, payload)
}

// createTable returns the caller's open table, or creates one.
//
// Payload (optional): {"player_count": 4, "starting_life": "20"}
func createTable(ctx context.Context, logger runtime.Logger, nk tableMatchmaker, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("authentication required", 16) // UNAUTHENTICATED
	}

	params := map[string]interface{}{}
	if strings.TrimSpace(payload) != "" {
		var req map[string]interface{}
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3)
		}
		if v, ok := req["player_count"]; ok {
			n, ok := paramInt(req, "player_count")
			if !ok || !domain.ValidPlayerCount(n) {
				return "", runtime.NewError(fmt.Sprintf("player_count must be 2, 3 or 4, got %v", v), 3)
			}
			params["player_count"] = n
		}
		if v, ok := req["starting_life"]; ok {
			params["starting_life"] = paramText(v)
		}
	}

	// Reuse a table this user created and is not currently hosting.
	query := fmt.Sprintf("+label.game:%s +label.creator:%q +label.open:1", GameLabel, userID)
	minSize := 0
	maxSize := 1
	matches, err := nk.MatchList(ctx, 1, true, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("createTable [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 && len(params) == 0 {
		logger.Info("createTable [User:%s]: Found existing table %s", userID, matches[0].MatchId)
		b, _ := json.Marshal(CreateTableResponse{MatchID: matches[0].MatchId, IsNew: false})
		return string(b), nil
	}

	params["creator"] = userID
	matchID, err := nk.MatchCreate(ctx, MatchNameTable, params)
	if err != nil {
		logger.Error("createTable [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("createTable [User:%s]: Created new table %s", userID, matchID)
	b, _ := json.Marshal(CreateTableResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
