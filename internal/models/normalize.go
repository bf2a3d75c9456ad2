package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeFlexible decodes a platform field that may arrive either as a
// JSON-encoded string or as an already-decoded structure. Older tenants
// store the property sub-structures as serialized text columns, newer ones
// return real JSON, and some omit the field entirely; display code has to
// tolerate all three. Absent values ("", null) leave dst untouched so the
// caller's default survives. A decode failure returns an error and the
// caller substitutes its default; it must never abort a page render.
func DecodeFlexible(raw json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return fmt.Errorf("unquote payload: %w", err)
		}
		inner = strings.TrimSpace(inner)
		if inner == "" || inner == "null" || inner == "undefined" {
			return nil
		}
		if err := json.Unmarshal([]byte(inner), dst); err != nil {
			return fmt.Errorf("decode string payload: %w", err)
		}
		return nil
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
