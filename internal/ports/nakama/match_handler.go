package nakama

import (
	"context"
	"database/sql"
	"math"
	"strconv"

	"lifecounter/internal/app"
	"lifecounter/internal/config"
	"lifecounter/internal/domain"
	"lifecounter/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/types/known/structpb"
)

// MatchState holds the authoritative runtime state for one table.
type MatchState struct {
	CreatorUserID string           `json:"creator_user_id"` // Only this user may host; empty means anyone
	Host          runtime.Presence `json:"-"`               // The single device presenting the table, nil when away
	Tick          int64            `json:"tick"`            // Current tick of the match
	IdleTicks     int64            `json:"idle_ticks"`      // Ticks elapsed since the host left
	App           *app.Service     `json:"-"`               // Table service owning the roster
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing table.")

	if err := config.LoadTableConfig(tableConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load table config: %v", err)
	}
	tableCfg := config.GetTableConfig()

	playerCount := tableCfg.GetPlayerCount()
	startingLife := tableCfg.GetStartingLife()

	// Runtime env overrides the config file; match params override both.
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env[envPlayerCount]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				playerCount = i
			}
		}
		if val, ok := env[envStartingLife]; ok {
			startingLife, _ = domain.ParseStartingLife(val)
		}
	}
	if n, ok := paramInt(params, "player_count"); ok {
		playerCount = n
	}
	if val, ok := params["starting_life"]; ok {
		startingLife, _ = domain.ParseStartingLife(paramText(val))
	}

	svc, err := app.NewService(playerCount, startingLife)
	if err != nil {
		logger.Warn("MatchInit: %v, seating %d players instead", err, domain.DefaultPlayerCount)
		svc, _ = app.NewService(domain.DefaultPlayerCount, startingLife)
	}

	state := &MatchState{
		App: svc,
	}
	if creator, ok := params["creator"].(string); ok {
		state.CreatorUserID = creator
	}

	label, err := tableLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	logger.Info("MatchInit: Table %s ready (players=%d, starting_life=%d)", svc.ID(), svc.Roster().PlayerCount(), svc.Roster().StartingLife())
	return state, tableTickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.Host != nil {
		return state, false, "table already hosted"
	}
	if matchState.CreatorUserID != "" && presence.GetUserId() != matchState.CreatorUserID {
		return state, false, "table belongs to another user"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	var extra []runtime.Presence
	for _, p := range presences {
		if matchState.Host != nil {
			// Two attempts may pass in the same tick; only the first one hosts.
			extra = append(extra, p)
			continue
		}
		matchState.Host = p
		matchState.IdleTicks = 0
		logger.Debug("MatchJoin: User %s now hosts table %s.", p.GetUserId(), matchState.App.ID())
	}
	if len(extra) > 0 {
		logger.Warn("MatchJoin: Kicking %d extra presences from hosted table.", len(extra))
		if err := dispatcher.MatchKick(extra); err != nil {
			logger.Error("MatchJoin: Failed to kick extra presences: %v", err)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.publishView(ctx, matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more presences leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		if isHost(matchState, p) {
			logger.Debug("MatchLeave: Host %s left table %s.", p.GetUserId(), matchState.App.ID())
			matchState.Host = nil
			matchState.IdleTicks = 0
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	if matchState.Host == nil {
		matchState.IdleTicks++
		if matchState.IdleTicks >= tableIdleTicks {
			logger.Info("MatchLoop: Terminating table %s after %d idle ticks.", matchState.App.ID(), matchState.IdleTicks)
			return nil
		}
	}

	for _, msg := range messages {
		if !isHost(matchState, msg) {
			logger.Warn("MatchLoop: Ignoring message from non-host %s.", msg.GetUserId())
			continue
		}
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	return matchState
}

// handleMessage decodes one client intent and applies it to the table.
func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	port := newDispatcherViewPort(dispatcher, state.Host)

	req, err := decodeRequest(msg.GetData())
	if err != nil {
		logger.Warn("MatchLoop: op %d from %s: %v", msg.GetOpCode(), msg.GetUserId(), err)
		mh.sendError(ctx, port, logger, 400, err.Error())
		return
	}

	var events []app.Event
	switch msg.GetOpCode() {
	case OpSetPlayerCount:
		var n int
		if n, err = intField(req, "player_count"); err == nil {
			events, err = state.App.SetPlayerCount(n)
		}
	case OpAdjustLife:
		var index, delta int
		if index, delta, err = indexDelta(req); err == nil {
			events, err = state.App.AdjustLife(index, delta)
		}
	case OpAdjustPoison:
		var index, delta int
		if index, delta, err = indexDelta(req); err == nil {
			events, err = state.App.AdjustPoison(index, delta)
		}
	case OpSetPlayerName:
		var index int
		if index, err = intField(req, "index"); err == nil {
			events, err = state.App.SetPlayerName(index, textField(req, "name"))
		}
	case OpApplySettings:
		events = state.App.ApplySettings(textField(req, "starting_life"))
	case OpApplyFormat:
		formatID := textField(req, "format")
		life, found := config.GetFormatStartingLife(formatID)
		if !found {
			logger.Warn("MatchLoop: Unknown format %q, applying starting life %d.", formatID, life)
		}
		events = state.App.ApplySettings(strconv.Itoa(life))
	case OpResetCounters:
		events = state.App.ResetCounters()
	case OpRequestSnapshot:
		mh.publishView(ctx, state, dispatcher, logger)
		return
	default:
		logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		mh.sendError(ctx, port, logger, 400, "unknown opcode")
		return
	}

	if err != nil {
		logger.Warn("MatchLoop: op %d from %s rejected: %v", msg.GetOpCode(), msg.GetUserId(), err)
		mh.sendError(ctx, port, logger, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.logEvent(logger, state, ev)
		if ev.Kind == app.EventRosterResized {
			mh.updateLabel(state, dispatcher, logger)
		}
	}
	mh.publishView(ctx, state, dispatcher, logger)
}

func (mh *matchHandler) logEvent(logger runtime.Logger, state *MatchState, ev app.Event) {
	if p, ok := ev.Payload.(app.SettingsAppliedPayload); ok && p.UsedFallback {
		logger.Info("Event: %s on table %s used fallback starting life %d for input %q", ev.Kind, state.App.ID(), p.StartingLife, p.Input)
		return
	}
	logger.Debug("Event: %s on table %s: %+v", ev.Kind, state.App.ID(), ev.Payload)
}

// publishView sends the current table view to the host.
func (mh *matchHandler) publishView(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Host == nil {
		return
	}
	port := newDispatcherViewPort(dispatcher, state.Host)
	if err := port.PublishView(ctx, state.App.Snapshot()); err != nil {
		logger.Error("Failed to publish table view: %v", err)
	}
}

func (mh *matchHandler) sendError(ctx context.Context, port ports.ViewPort, logger runtime.Logger, code int, message string) {
	if err := port.PublishError(ctx, code, message); err != nil {
		logger.Error("Failed to send table error: %v", err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := tableLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

// MatchSignal answers server-side reads; "snapshot" returns the view as JSON.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}
	if data != signalSnapshot {
		logger.Warn("MatchSignal: Unknown signal %q", data)
		return state, ""
	}
	snapshot, err := marshalViewJSON(matchState.App.Snapshot())
	if err != nil {
		logger.Error("MatchSignal: Failed to marshal snapshot: %v", err)
		return state, ""
	}
	return state, snapshot
}

func isHost(state *MatchState, p runtime.Presence) bool {
	return state.Host != nil && p != nil && state.Host.GetSessionId() == p.GetSessionId()
}

func indexDelta(req *structpb.Struct) (index, delta int, err error) {
	if index, err = intField(req, "index"); err != nil {
		return 0, 0, err
	}
	if delta, err = intField(req, "delta"); err != nil {
		return 0, 0, err
	}
	return index, delta, nil
}

func paramInt(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), v == math.Trunc(v)
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

func paramText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
