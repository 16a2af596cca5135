package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Legacy rows sometimes hold a doubly encoded value: a JSON string whose
// text is itself an encoded array. StringList and SubSectionList accept
// both shapes so reads never depend on how a row was written.

// StringList decodes a JSON array of strings, or a JSON string containing
// an encoded array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	raw, empty, err := unwrapListJSON(data)
	if err != nil {
		return err
	}
	if empty {
		*l = nil
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = values
	return nil
}

// SubSectionList decodes a JSON array of sub-sections, or a JSON string
// containing an encoded array.
type SubSectionList []SubSection

func (l *SubSectionList) UnmarshalJSON(data []byte) error {
	raw, empty, err := unwrapListJSON(data)
	if err != nil {
		return err
	}
	if empty {
		*l = nil
		return nil
	}
	var values []SubSection
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("decode sub-section list: %w", err)
	}
	*l = values
	return nil
}

func unwrapListJSON(data []byte) (raw []byte, empty bool, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true, nil
	}
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, false, fmt.Errorf("decode wrapped list: %w", err)
		}
		inner = strings.TrimSpace(inner)
		if inner == "" || inner == "null" {
			return nil, true, nil
		}
		trimmed = []byte(inner)
	}
	return trimmed, false, nil
}
