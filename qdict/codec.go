package qdict

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeJSON decodes a JSON object into a Dict, deep-converting nested
// objects so they merge recursively like hand-built ones.
func DecodeJSON(data []byte) (Dict, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no JSON data provided")
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	return FromNested(m), nil
}

// JSON encodes the Dict as a JSON object.
func (d Dict) JSON() ([]byte, error) {
	data, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	return data, nil
}

// DecodeYAML decodes a YAML mapping into a Dict, deep-converting nested
// mappings.
func DecodeYAML(data []byte) (Dict, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no YAML data provided")
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	return FromNested(m), nil
}

// YAML encodes the Dict as a YAML mapping.
func (d Dict) YAML() ([]byte, error) {
	data, err := yaml.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	return data, nil
}

// DecodeMsgpack decodes a MessagePack map into a Dict, deep-converting
// nested mappings.
func DecodeMsgpack(data []byte) (Dict, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no msgpack data provided")
	}

	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding msgpack: %w", err)
	}

	return FromNested(m), nil
}

// Msgpack encodes the Dict as a MessagePack map.
func (d Dict) Msgpack() ([]byte, error) {
	data, err := msgpack.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("encoding msgpack: %w", err)
	}

	return data, nil
}
