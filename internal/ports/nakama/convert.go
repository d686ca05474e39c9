package nakama

import (
	"fmt"
	"math"
	"strconv"

	"lifecounter/internal/app"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// viewToProto maps a table view to the snapshot message sent to clients.
func viewToProto(view app.View) (*structpb.Struct, error) {
	players := make([]interface{}, 0, len(view.Players))
	for _, p := range view.Players {
		players = append(players, map[string]interface{}{
			"index":            p.Index,
			"name":             p.Name,
			"display_name":     p.DisplayName,
			"life":             p.Life,
			"poison":           p.Poison,
			"region":           string(p.Placement.Region),
			"rotation_degrees": p.Placement.RotationDegrees,
			"bounds": map[string]interface{}{
				"x":      p.Bounds.X,
				"y":      p.Bounds.Y,
				"width":  p.Bounds.Width,
				"height": p.Bounds.Height,
			},
		})
	}

	return structpb.NewStruct(map[string]interface{}{
		"table_id":      view.TableID,
		"player_count":  view.PlayerCount,
		"starting_life": view.StartingLife,
		"players":       players,
	})
}

func marshalView(view app.View) ([]byte, error) {
	msg, err := viewToProto(view)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	return proto.Marshal(msg)
}

func marshalViewJSON(view app.View) (string, error) {
	msg, err := viewToProto(view)
	if err != nil {
		return "", fmt.Errorf("failed to build snapshot: %w", err)
	}
	b, err := protojson.Marshal(msg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func marshalTableError(code int, message string) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

// tableLabel is the JSON label advertised for match listing.
func tableLabel(state *MatchState) (string, error) {
	open := 0
	if state.Host == nil {
		open = 1
	}
	label, err := structpb.NewStruct(map[string]interface{}{
		"game":    GameLabel,
		"creator": state.CreatorUserID,
		"open":    open,
		"players": state.App.Roster().PlayerCount(),
	})
	if err != nil {
		return "", err
	}
	b, err := protojson.Marshal(label)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeRequest reads a client payload. An empty payload is an empty request.
func decodeRequest(data []byte) (*structpb.Struct, error) {
	req := &structpb.Struct{}
	if len(data) == 0 {
		return req, nil
	}
	if err := proto.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("invalid request payload: %w", err)
	}
	return req, nil
}

func intField(req *structpb.Struct, key string) (int, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	return valueToInt(key, v)
}

func valueToInt(key string, v *structpb.Value) (int, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
			return 0, fmt.Errorf("field %q must be an integer, got %v", key, f)
		}
		return int(f), nil
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(kind.StringValue)
		if err != nil {
			return 0, fmt.Errorf("field %q must be an integer, got %q", key, kind.StringValue)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("field %q must be an integer", key)
	}
}

// textField returns a field as text. Missing and null fields are empty;
// numbers are formatted so settings can be sent either way.
func textField(req *structpb.Struct, key string) string {
	v, ok := req.GetFields()[key]
	if !ok {
		return ""
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	default:
		return ""
	}
}
