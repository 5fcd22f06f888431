package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexID is an identifier field the backend serializes inconsistently:
// some resource versions send JSON numbers, others strings, and absent
// foreign keys arrive as null. It always decodes to the string form.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }

// firstID returns the first non-empty id among drifted field aliases
// (e.g. client_id on newer records, client on older ones).
func firstID(ids ...flexID) string {
	for _, id := range ids {
		if id != "" {
			return string(id)
		}
	}
	return ""
}
