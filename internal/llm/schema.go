package llm

import "encoding/json"

// Kind is a schema node type.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// Schema is a provider-neutral description of a structured reply. Providers
// translate it to their SDK type; JSONSchema renders it for local validation.
type Schema struct {
	Kind        Kind
	Description string
	Properties  map[string]*Schema
	// Order keeps property order stable for providers that honour it.
	Order    []string
	Required []string
	Items    *Schema
	// Minimum and Maximum bound numbers; MinItems bounds arrays. They are
	// enforced by local validation only.
	Minimum  *float64
	Maximum  *float64
	MinItems int
}

// String returns a string node.
func String(description string) *Schema {
	return &Schema{Kind: KindString, Description: description}
}

// Number returns a number node bounded to [min, max].
func Number(min, max float64) *Schema {
	return &Schema{Kind: KindNumber, Minimum: &min, Maximum: &max}
}

// ArrayOf returns an array node that must hold at least minItems items.
func ArrayOf(items *Schema, minItems int) *Schema {
	return &Schema{Kind: KindArray, Items: items, MinItems: minItems}
}

// Field is one named object property.
type Field struct {
	Name   string
	Schema *Schema
}

// Object returns an object node whose fields are all required.
func Object(fields ...Field) *Schema {
	s := &Schema{Kind: KindObject, Properties: make(map[string]*Schema, len(fields))}
	for _, f := range fields {
		s.Properties[f.Name] = f.Schema
		s.Order = append(s.Order, f.Name)
		s.Required = append(s.Required, f.Name)
	}
	return s
}

// JSONSchema renders the node as a JSON Schema (draft 7) document.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{"type": string(s.Kind)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Kind {
	case KindObject:
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		if len(s.Required) > 0 {
			required := make([]any, len(s.Required))
			for i, r := range s.Required {
				required[i] = r
			}
			out["required"] = required
		}
	case KindArray:
		if s.Items != nil {
			out["items"] = s.Items.JSONSchema()
		}
		if s.MinItems > 0 {
			out["minItems"] = s.MinItems
		}
	case KindNumber:
		if s.Minimum != nil {
			out["minimum"] = *s.Minimum
		}
		if s.Maximum != nil {
			out["maximum"] = *s.Maximum
		}
	case KindString:
		out["minLength"] = 1
	}
	return out
}

// JSONSchemaString renders JSONSchema as a string document.
func (s *Schema) JSONSchemaString() (string, error) {
	data, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
