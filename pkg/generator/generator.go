// Package generator coordinates the pipeline from a constants manifest or an
// OpenAPI document to an emitted Python module. It applies sensible defaults
// (Python renderer, embedded templates, offline loader) while remaining open
// to dependency injection.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-pygen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-pygen/internal/openapi/parser"
	"github.com/goliatone/go-pygen/pkg/emit"
	"github.com/goliatone/go-pygen/pkg/literal"
	"github.com/goliatone/go-pygen/pkg/manifest"
	pkgopenapi "github.com/goliatone/go-pygen/pkg/openapi"
	"github.com/goliatone/go-pygen/pkg/targets/python"
)

// DefaultTarget names the renderer used when a request omits one.
const DefaultTarget = python.Name

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *literal.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithEmitter injects a module emitter.
func WithEmitter(emitter *emit.Emitter) Option {
	return func(g *Generator) {
		g.emitter = emitter
	}
}

// WithLoader injects a custom OpenAPI document loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithLogger injects a structured logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithDefaultTarget overrides the renderer used when a request omits an
// explicit Target field.
func WithDefaultTarget(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultTarget = name
		}
	}
}

// Request describes one generation run. Exactly one of Manifest or Document
// must be set.
type Request struct {
	// Manifest is a constants manifest path. When ManifestFS is non-nil the
	// path resolves inside it, otherwise against the operating system.
	Manifest   string
	ManifestFS fs.FS

	// Document is an OpenAPI source; the run emits argument-default tables
	// for its operations.
	Document pkgopenapi.Source

	// Module selects which declared module to generate in manifest mode,
	// and names the output module in document mode. Optional when the
	// manifest declares exactly one module.
	Module string

	// Target names the registered renderer. Defaults to "python".
	Target string
}

// Generator runs the source → bindings → render → emit pipeline.
type Generator struct {
	registry      *literal.Registry
	emitter       *emit.Emitter
	loader        pkgopenapi.Loader
	parser        pkgopenapi.Parser
	logger        *zap.Logger
	defaultTarget string
	initialiseErr error
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultTarget: DefaultTarget,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.registry == nil {
		g.registry = literal.NewRegistry()
	}
	if !g.registry.Has(python.Name) {
		if err := g.registry.Register(python.New()); err != nil {
			g.initialiseErr = fmt.Errorf("generator: register python renderer: %w", err)
			return
		}
	}
	if g.emitter == nil {
		emitter, err := emit.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: create emitter: %w", err)
			return
		}
		g.emitter = emitter
	}
	if g.loader == nil {
		g.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
}

// Generate runs the pipeline for one request and returns the generated
// Python source bytes.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if g.initialiseErr != nil {
		return nil, g.initialiseErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := req.Target
	if target == "" {
		target = g.defaultTarget
	}
	renderer, err := g.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("generator: resolve target: %w", err)
	}

	var module emit.Module
	switch {
	case req.Manifest != "" && req.Document != nil:
		return nil, errors.New("generator: request cannot combine a manifest and a document source")
	case req.Manifest != "":
		module, err = g.manifestModule(req)
	case req.Document != nil:
		module, err = g.documentModule(ctx, req)
	default:
		return nil, errors.New("generator: request needs a manifest or a document source")
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("emitting module",
		zap.String("module", module.Name),
		zap.String("target", renderer.Name()),
		zap.Int("bindings", len(module.Bindings)))

	out, err := g.emitter.Emit(ctx, module, renderer)
	if err != nil {
		return nil, fmt.Errorf("generator: emit module %q: %w", module.Name, err)
	}
	return out, nil
}

func (g *Generator) manifestModule(req Request) (emit.Module, error) {
	g.logger.Debug("loading manifest", zap.String("path", req.Manifest))

	var (
		m   manifest.Manifest
		err error
	)
	if req.ManifestFS != nil {
		m, err = manifest.LoadFS(req.ManifestFS, req.Manifest)
	} else {
		m, err = manifest.Load(req.Manifest)
	}
	if err != nil {
		return emit.Module{}, fmt.Errorf("generator: load manifest: %w", err)
	}

	name := req.Module
	if name == "" {
		if len(m.Modules) != 1 {
			return emit.Module{}, fmt.Errorf("generator: manifest declares %d modules, request must name one of %v",
				len(m.Modules), m.ModuleNames())
		}
		name = m.Modules[0].Name
	}

	declared, ok := m.Module(name)
	if !ok {
		return emit.Module{}, fmt.Errorf("generator: manifest does not declare module %q", name)
	}

	module, err := declared.EmitModule()
	if err != nil {
		return emit.Module{}, fmt.Errorf("generator: convert module %q: %w", name, err)
	}
	return module, nil
}

func (g *Generator) documentModule(ctx context.Context, req Request) (emit.Module, error) {
	g.logger.Debug("loading document", zap.String("location", req.Document.Location()))

	doc, err := g.loader.Load(ctx, req.Document)
	if err != nil {
		return emit.Module{}, fmt.Errorf("generator: load document: %w", err)
	}

	operations, err := g.parser.Operations(ctx, doc)
	if err != nil {
		return emit.Module{}, fmt.Errorf("generator: parse operations: %w", err)
	}
	g.logger.Debug("collected operations", zap.Int("count", len(operations)))

	name := req.Module
	if name == "" {
		name = "defaults"
	}

	module, err := pkgopenapi.DefaultsModule(name, operations)
	if err != nil {
		return emit.Module{}, fmt.Errorf("generator: build defaults module: %w", err)
	}
	return module, nil
}
