package plan

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

const schemaID = "https://github.com/felixgeelhaar/planlint/schemas/plan-v0.json"

// GenerateSchema produces a JSON Schema Draft 2020-12 document from the
// Go Plan struct using invopop/jsonschema.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Plan{})
	s.ID = schemaID
	s.Title = "Agent Execution Plan v0"
	s.Description = "Schema for planlint plan documents (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

// ValidateDocument checks a raw plan document against the generated JSON
// Schema before it is decoded into the typed model. YAML documents are
// normalized through JSON first so schema validation sees canonical types.
func ValidateDocument(data []byte, asYAML bool) error {
	var doc any
	if asYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(errors.ErrCodeFileUnmarshal, "decode plan document", err)
		}
		normalized, err := json.Marshal(doc)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileUnmarshal, "normalize plan document", err)
		}
		data = normalized
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(errors.ErrCodeFileUnmarshal, "decode plan document", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return errors.Wrap(errors.ErrCodeSchemaInvalid, "plan document does not match schema", err)
	}
	return nil
}

func compiledSchema() (*sjsonschema.Schema, error) {
	raw, err := GenerateSchema()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "generate plan schema", err)
	}

	var schemaDoc any
	if err := json.Unmarshal(raw, &schemaDoc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "unmarshal plan schema", err)
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("plan-v0.json", schemaDoc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "add plan schema resource", err)
	}
	sch, err := c.Compile("plan-v0.json")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "compile plan schema", err)
	}
	return sch, nil
}
