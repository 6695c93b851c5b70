package schema

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/nfrund/signin/internal/storage"
	"gopkg.in/yaml.v3"
)

// Document is the YAML representation of a schema.
type Document struct {
	Fields []FieldDocument `yaml:"fields"`
}

// FieldDocument describes one field.
type FieldDocument struct {
	Name  string         `yaml:"name"`
	Type  string         `yaml:"type,omitempty"`
	Rules []RuleDocument `yaml:"rules"`
}

// RuleDocument describes one rule. Param is the bound for min/max and the
// pattern for matches.
type RuleDocument struct {
	Rule    RuleKind `yaml:"rule"`
	Param   any      `yaml:"param,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// Load parses a YAML schema document and compiles it.
func Load(r io.Reader) (*Schema, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidSchema, err)
	}
	return doc.Compile()
}

// LoadFile reads and compiles the schema document stored at path.
func LoadFile(ctx context.Context, store storage.Reader, path string) (*Schema, error) {
	rc, err := store.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open schema %s: %w", path, err)
	}
	defer rc.Close()
	s, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return s, nil
}

// Compile builds a Schema from the document.
func (d Document) Compile() (*Schema, error) {
	fields := make([]*StringSchema, 0, len(d.Fields))
	for _, fd := range d.Fields {
		if fd.Type != "" && fd.Type != "string" {
			return nil, fmt.Errorf("%w: field %q: unsupported type %q", ErrInvalidSchema, fd.Name, fd.Type)
		}
		f := String(fd.Name)
		for _, rd := range fd.Rules {
			switch rd.Rule {
			case RuleRequired:
				f.Required(rd.Message)
			case RuleEmail:
				f.Email(rd.Message)
			case RuleMin, RuleMax:
				n, err := strconv.Atoi(fmt.Sprint(rd.Param))
				if err != nil {
					return nil, fmt.Errorf("%w: field %q: %s needs an integer param", ErrInvalidSchema, fd.Name, rd.Rule)
				}
				if rd.Rule == RuleMin {
					f.Min(n, rd.Message)
				} else {
					f.Max(n, rd.Message)
				}
			case RuleMatches:
				pattern, ok := rd.Param.(string)
				if !ok || pattern == "" {
					return nil, fmt.Errorf("%w: field %q: matches needs a pattern", ErrInvalidSchema, fd.Name)
				}
				f.Matches(pattern, rd.Message)
			default:
				return nil, fmt.Errorf("%w: field %q: unknown rule %q", ErrInvalidSchema, fd.Name, rd.Rule)
			}
		}
		fields = append(fields, f)
	}
	return Object(fields...)
}

// Document converts the schema back into its YAML representation.
func (s *Schema) Document() Document {
	var doc Document
	for _, f := range s.fields {
		fd := FieldDocument{Name: f.name, Type: "string"}
		for _, r := range f.Rules() {
			rd := RuleDocument{Rule: r.Kind, Message: r.Message}
			switch r.Kind {
			case RuleMin, RuleMax:
				rd.Param = r.limit
			case RuleMatches:
				rd.Param = r.Param
			}
			fd.Rules = append(fd.Rules, rd)
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

// Marshal encodes the schema as a YAML document.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s.Document())
}
