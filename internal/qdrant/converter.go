package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// pointIDString renders a Qdrant point ID as an opaque string.
// Qdrant IDs are either unsigned integers or UUIDs.
func pointIDString(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("qdrant: point has no id")
	}

	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("qdrant: unexpected PointId type: %T", v)
	}
}

// payloadToMap converts a Qdrant payload into a plain map so the rest of the
// program never touches the SDK's protobuf value types.
func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = valueToAny(v)
	}
	return out
}

// valueToAny unwraps one protobuf payload value into its Go counterpart.
// Structs become map[string]any, lists become []any.
func valueToAny(v *qdrant.Value) any {
	if v == nil {
		return nil
	}

	switch kind := v.GetKind().(type) {
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]any, 0, len(values))
		for _, item := range values {
			list = append(list, valueToAny(item))
		}
		return list
	case *qdrant.Value_StructValue:
		return payloadToMap(kind.StructValue.GetFields())
	default:
		return fmt.Sprintf("%v", v)
	}
}
