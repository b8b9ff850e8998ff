// Package tool models tool specifications and indexes them for lookup.
package tool

// TypeTag is the declared type of a tool parameter
type TypeTag string

// Parameter type tags
const (
	TypeString  TypeTag = "string"
	TypeNumber  TypeTag = "number"
	TypeBoolean TypeTag = "boolean"
	TypeObject  TypeTag = "object"
	TypeArray   TypeTag = "array"
	TypeAny     TypeTag = "any"
)

// Valid reports whether the tag is a known type tag
func (t TypeTag) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeObject, TypeArray, TypeAny:
		return true
	default:
		return false
	}
}

// Matches reports whether a runtime parameter value satisfies the tag.
// TypeAny matches everything, including nil.
func (t TypeTag) Matches(v any) bool {
	if t == TypeAny {
		return true
	}
	return TagOf(v) == string(t)
}

// TagOf returns the runtime type tag of a decoded parameter value.
// Values outside the JSON/YAML data model report as "unknown".
func TagOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}

// Spec declares a tool's parameter contract
type Spec struct {
	Name        string             `json:"name" yaml:"name" jsonschema:"required"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Required    []string           `json:"required_params,omitempty" yaml:"required_params,omitempty"`
	Optional    []string           `json:"optional_params,omitempty" yaml:"optional_params,omitempty"`
	Types       map[string]TypeTag `json:"param_types,omitempty" yaml:"param_types,omitempty"`

	// SideEffect is tri-state: nil means the tool's effect is unknown,
	// which keeps the unused-output check from ever firing for it.
	SideEffect *bool `json:"side_effect,omitempty" yaml:"side_effect,omitempty"`
}

// Declares reports whether the spec declares the named parameter,
// required or optional
func (s Spec) Declares(param string) bool {
	for _, p := range s.Required {
		if p == param {
			return true
		}
	}
	for _, p := range s.Optional {
		if p == param {
			return true
		}
	}
	return false
}

// DeclaredParams returns all declared parameter names, required first
func (s Spec) DeclaredParams() []string {
	out := make([]string, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	out = append(out, s.Optional...)
	return out
}

// Pure reports whether the tool is explicitly declared side-effect free
func (s Spec) Pure() bool {
	return s.SideEffect != nil && !*s.SideEffect
}
