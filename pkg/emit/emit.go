// Package emit assembles named literal bindings into complete Python module
// files. The literal text always comes from a literal.Renderer; this package
// only owns the file skeleton (header, docstring, NAME = value lines).
package emit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-pygen/pkg/literal"
	"github.com/goliatone/go-pygen/pkg/pyvalue"
	"github.com/goliatone/go-pygen/pkg/template"
	"github.com/goliatone/go-pygen/pkg/template/gotemplate"
)

// DefaultHeader is the generated-file marker written at the top of every
// module unless overridden.
const DefaultHeader = "# This file is automatically generated. Do not edit."

const defaultTemplateName = "module.py"

// Binding is a named constant in a generated module. Order is preserved in
// the output.
type Binding struct {
	Name    string
	Value   pyvalue.Value
	Comment string
}

// Module describes one generated file: its dotted module name, an optional
// docstring, and the constants it exports.
type Module struct {
	Name      string
	Docstring string
	Bindings  []Binding
}

// Option customises the emitter configuration.
type Option func(*config)

type config struct {
	renderer     template.TemplateRenderer
	templateName string
	header       string
}

// WithTemplateRenderer swaps the template engine used for the file skeleton.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		cfg.renderer = renderer
	}
}

// WithTemplateName overrides the template the emitter renders. The name
// resolves against the engine's loaders, embedded defaults included.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.templateName = trimmed
		}
	}
}

// WithHeader overrides the generated-file header line.
func WithHeader(header string) Option {
	return func(cfg *config) {
		cfg.header = header
	}
}

// Emitter renders Modules into Python source bytes.
type Emitter struct {
	renderer     template.TemplateRenderer
	templateName string
	header       string
}

// New constructs an Emitter. Without options it uses the embedded default
// template behind a pongo2 engine.
func New(options ...Option) (*Emitter, error) {
	cfg := &config{
		templateName: defaultTemplateName,
		header:       DefaultHeader,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("emit: create template engine: %w", err)
		}
		cfg.renderer = engine
	}

	return &Emitter{
		renderer:     cfg.renderer,
		templateName: cfg.templateName,
		header:       cfg.header,
	}, nil
}

// Emit validates the module and renders it into Python source bytes using
// the supplied target renderer for every binding value.
func (e *Emitter) Emit(ctx context.Context, module Module, target literal.Renderer) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("emit: target renderer is required")
	}
	if err := module.Validate(); err != nil {
		return nil, err
	}

	bindings := make([]map[string]string, 0, len(module.Bindings))
	for _, binding := range module.Bindings {
		bindings = append(bindings, map[string]string{
			"name":    binding.Name,
			"literal": target.Render(binding.Value),
			"comment": binding.Comment,
		})
	}

	data := map[string]any{
		"module":    module.Name,
		"docstring": module.Docstring,
		"header":    e.header,
		"bindings":  bindings,
	}

	rendered, err := e.renderer.RenderTemplate(e.templateName, data)
	if err != nil {
		return nil, fmt.Errorf("emit: render module %q: %w", module.Name, err)
	}

	return []byte(strings.TrimRight(rendered, "\n") + "\n"), nil
}

// Validate checks the module name, binding identifiers, and binding
// uniqueness before any rendering happens.
func (m Module) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("emit: module name is required")
	}
	for _, segment := range strings.Split(m.Name, ".") {
		if !IsIdentifier(segment) {
			return fmt.Errorf("emit: module name %q is not a valid dotted Python name", m.Name)
		}
	}

	seen := make(map[string]struct{}, len(m.Bindings))
	for _, binding := range m.Bindings {
		if !IsIdentifier(binding.Name) {
			return fmt.Errorf("emit: binding name %q is not a valid Python identifier", binding.Name)
		}
		if _, dup := seen[binding.Name]; dup {
			return fmt.Errorf("emit: duplicate binding name %q", binding.Name)
		}
		seen[binding.Name] = struct{}{}
	}
	return nil
}
