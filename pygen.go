// Package pygen generates Python constant modules from Go values, YAML
// manifests, or OpenAPI documents. The root package re-exports the pieces
// most callers need; the full contracts live under pkg/.
package pygen

import (
	"context"

	internalLoader "github.com/goliatone/go-pygen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-pygen/internal/openapi/parser"
	"github.com/goliatone/go-pygen/pkg/emit"
	"github.com/goliatone/go-pygen/pkg/generator"
	pkgopenapi "github.com/goliatone/go-pygen/pkg/openapi"
	"github.com/goliatone/go-pygen/pkg/pyvalue"
	"github.com/goliatone/go-pygen/pkg/targets/python"
)

// Value is the closed shape union renderers understand.
type Value = pyvalue.Value

// Module describes one generated Python file.
type Module = emit.Module

// Binding is a named constant inside a generated module.
type Binding = emit.Binding

// defaultRenderer backs the package-level quick-start helper. The renderer
// is stateless, so sharing one instance is safe.
var defaultRenderer = python.New()

// RenderPython returns the Python literal for a value using the default
// renderer configuration.
func RenderPython(value Value) string {
	return defaultRenderer.Render(value)
}

// FromGo converts a native Go value into the shape model.
func FromGo(input any) (Value, error) {
	return pyvalue.FromGo(input)
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// NewLoader constructs an OpenAPI document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs an OpenAPI parser backed by the internal
// implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// GenerateModule loads a constants manifest and emits the named module as
// Python source. It is the simplest entry point for callers that just want
// generated bytes.
func GenerateModule(ctx context.Context, manifestPath, moduleName string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Manifest: manifestPath,
		Module:   moduleName,
	})
}

// GenerateDefaults loads an OpenAPI document and emits argument-default
// tables for its operations as Python source.
func GenerateDefaults(ctx context.Context, source pkgopenapi.Source, moduleName string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Document: source,
		Module:   moduleName,
	})
}
