package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a JSON or YAML document whose top level is an object. JSON
// numbers are kept as json.Number so integer and float fields coerce exactly.
func Decode(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}
	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var out map[string]any
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return out, nil
	}
	var out map[string]any
	if err := yaml.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if out == nil {
		return nil, errors.New("document is not an object")
	}
	return out, nil
}
