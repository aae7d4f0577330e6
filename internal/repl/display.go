package repl

import (
	"encoding/json"
	"fmt"
)

// missingKeyPlaceholder is shown when a configured text key is absent from a
// result's payload. The key being missing is not an error.
const missingKeyPlaceholder = "<Payload enthält den angegebenen Key nicht>"

// displayValue picks what to show as the context for one result: the
// configured payload field when a text key is set, otherwise the whole
// payload.
func (l *Loop) displayValue(payload map[string]any) string {
	if l.textKey == "" {
		return FormatPayload(payload)
	}

	value, ok := payload[l.textKey]
	if !ok {
		return missingKeyPlaceholder
	}

	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// FormatPayload renders a payload map as compact JSON. JSON keeps the key
// order stable, which matters for a readable console.
func FormatPayload(payload map[string]any) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(b)
}
