package openapi

import (
	"errors"
	"sort"
)

// Source identifies where an OpenAPI document originated so loaders can
// operate on files, fs.FS entries, or URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin. Exposing this type
// instead of kin-openapi structs keeps the public API decoupled from the
// parser implementation.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Parameter is one operation input with the metadata the generator cares
// about: whether the contract declares a default, and which values an enum
// restricts it to. Request-body properties surface as parameters with
// In == "body".
type Parameter struct {
	Name       string
	In         string // "query", "path", "header", "cookie", or "body"
	Required   bool
	Default    any
	HasDefault bool
	Enum       []any
}

// Operation models the subset of OpenAPI operation metadata needed to build
// argument-default tables.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Parameters  []Parameter
}

// NewOperation validates core fields.
func NewOperation(id, method, path string, params []Parameter) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}

	return Operation{
		ID:         id,
		Method:     method,
		Path:       path,
		Parameters: append([]Parameter(nil), params...),
	}, nil
}

// Defaults returns the operation's parameters that declare a default,
// sorted by parameter name.
func (op Operation) Defaults() []Parameter {
	var out []Parameter
	for _, param := range op.Parameters {
		if param.HasDefault {
			out = append(out, param)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Choices returns the operation's parameters restricted by an enum, sorted
// by parameter name.
func (op Operation) Choices() []Parameter {
	var out []Parameter
	for _, param := range op.Parameters {
		if len(param.Enum) > 0 {
			out = append(out, param)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
