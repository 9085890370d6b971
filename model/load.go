package model

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a YAML or JSON document description. The payload's "kind"
// field selects the variant (defaulting to invoice) and the remaining
// fields are merged over that variant's defaults, so a sparse file only
// overrides what it mentions.
func Load(data []byte) (Document, error) {
	var probe struct {
		Kind Kind `yaml:"kind" json:"kind"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if probe.Kind == "" {
		probe.Kind = KindInvoice
	}

	doc, err := New(probe.Kind)
	if err != nil {
		return nil, err
	}

	// Route through JSON so the decimal fields decode uniformly whether
	// the input was YAML or JSON.
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	delete(generic, "kind")

	buf, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("normalizing document: %w", err)
	}
	if err := json.Unmarshal(buf, doc); err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", probe.Kind, err)
	}

	return doc, nil
}

// LoadFile reads and parses a document description file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document file: %w", err)
	}
	return Load(data)
}
