package gemini

import "google.golang.org/genai"

// Field is a named schema property. Properties keep declaration order.
type Field struct {
	Name   string
	Schema *genai.Schema
}

// Object builds an object schema in which every field is required.
func Object(fields ...Field) *genai.Schema {
	s := &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       make(map[string]*genai.Schema, len(fields)),
		PropertyOrdering: make([]string, 0, len(fields)),
		Required:         make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		s.Properties[f.Name] = f.Schema
		s.PropertyOrdering = append(s.PropertyOrdering, f.Name)
		s.Required = append(s.Required, f.Name)
	}
	return s
}

func String(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func StringArray(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: description,
		Items:       &genai.Schema{Type: genai.TypeString},
	}
}

// ArrayOf wraps an item schema in an array.
func ArrayOf(description string, item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: description, Items: item}
}

func Prop(name string, s *genai.Schema) Field {
	return Field{Name: name, Schema: s}
}

// Loose builds an object schema with no required fields.
func Loose(fields ...Field) *genai.Schema {
	s := Object(fields...)
	s.Required = nil
	return s
}
