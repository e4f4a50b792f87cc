package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"editorbot/internal/plan"
	"editorbot/internal/record"
)

// Encoding names a byte-level plan file format.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// ParseEncoding accepts "json", "yaml" or "yml".
func ParseEncoding(value string) (Encoding, error) {
	switch value {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported plan encoding %q", value)
	}
}

// Extension returns the file extension for e, without the dot.
func (e Encoding) Extension() string {
	return string(e)
}

// Marshal encodes p in the given encoding.
func Marshal(p plan.Plan, e Encoding) ([]byte, error) {
	switch e {
	case JSON:
		return MarshalJSON(p)
	case YAML:
		return MarshalYAML(p)
	default:
		return nil, fmt.Errorf("unsupported plan encoding %q", e)
	}
}

// Unmarshal decodes a plan from JSON or YAML, detected from the content.
func Unmarshal(data []byte) (plan.Plan, error) {
	r, err := record.Decode(data)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("decode render plan: %w", err)
	}
	return Deserialize(r)
}

// MarshalJSON encodes p as indented JSON.
func MarshalJSON(p plan.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(Serialize(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode render plan json: %w", err)
	}
	return append(data, '\n'), nil
}

// UnmarshalJSON decodes a plan from JSON. Numbers are read as json.Number.
func UnmarshalJSON(data []byte) (plan.Plan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var r Record
	if err := dec.Decode(&r); err != nil {
		return plan.Plan{}, fmt.Errorf("decode render plan json: %w", err)
	}
	return Deserialize(r)
}

// MarshalYAML encodes p as YAML.
func MarshalYAML(p plan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Serialize(p)); err != nil {
		return nil, fmt.Errorf("encode render plan yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode render plan yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a plan from YAML.
func UnmarshalYAML(data []byte) (plan.Plan, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return plan.Plan{}, fmt.Errorf("decode render plan yaml: %w", err)
	}
	return Deserialize(r)
}
