package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

// Load reads a Plan from a JSON or YAML file, chosen by extension.
// Decoding is strict: unknown fields are rejected.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, fmt.Sprintf("read plan file %s", path), err)
	}

	p, err := Parse(data, isYAML(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileUnmarshal, fmt.Sprintf("parse plan file %s", path), err)
	}
	return p, nil
}

// Parse decodes a plan document from raw bytes
func Parse(data []byte, asYAML bool) (*Plan, error) {
	var p Plan
	if asYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Save writes a Plan to a JSON or YAML file, chosen by extension
func Save(p *Plan, path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "marshal plan", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("write plan file %s", path), err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
