package tool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

// specsDocument is the on-disk shape of a tool-spec collection
type specsDocument struct {
	Tools []Spec `json:"tools" yaml:"tools" jsonschema:"required"`
}

// LoadSpecs reads a tool-spec collection from a JSON or YAML file.
// Decoding is strict: unknown fields are rejected.
func LoadSpecs(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, fmt.Sprintf("read tool specs %s", path), err)
	}

	var doc specsDocument
	if isYAML(path) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileUnmarshal, fmt.Sprintf("parse tool specs %s", path), err)
	}
	return doc.Tools, nil
}

// GenerateSchema produces a JSON Schema Draft 2020-12 document for
// tool-spec collection files.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&specsDocument{})
	s.ID = "https://github.com/felixgeelhaar/planlint/schemas/tools-v0.json"
	s.Title = "Tool Specification Collection v0"
	s.Description = "Schema for planlint tool-spec documents (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool schema: %w", err)
	}
	return data, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
