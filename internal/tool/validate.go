package tool

import (
	"encoding/json"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

// ValidateDocument checks a raw tool-spec document against the generated
// JSON Schema before it is decoded into the typed model. YAML documents
// are normalized through JSON first so schema validation sees canonical
// types.
func ValidateDocument(data []byte, asYAML bool) error {
	var doc any
	if asYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(errors.ErrCodeFileUnmarshal, "decode tool specs document", err)
		}
		normalized, err := json.Marshal(doc)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileUnmarshal, "normalize tool specs document", err)
		}
		data = normalized
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(errors.ErrCodeFileUnmarshal, "decode tool specs document", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return errors.Wrap(errors.ErrCodeSchemaInvalid, "tool specs document does not match schema", err)
	}
	return nil
}

func compiledSchema() (*sjsonschema.Schema, error) {
	raw, err := GenerateSchema()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "generate tool specs schema", err)
	}

	var schemaDoc any
	if err := json.Unmarshal(raw, &schemaDoc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "unmarshal tool specs schema", err)
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("tools-v0.json", schemaDoc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "add tool specs schema resource", err)
	}
	sch, err := c.Compile("tools-v0.json")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSchemaInvalid, "compile tool specs schema", err)
	}
	return sch, nil
}
