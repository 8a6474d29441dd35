package generator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pygen/pkg/generator"
	"github.com/goliatone/go-pygen/pkg/literal"
	pkgopenapi "github.com/goliatone/go-pygen/pkg/openapi"
)

const fixtureManifest = `
modules:
  - name: constants
    docstring: Build constants.
    constants:
      - name: VERSION
        value: "1.2.3"
      - name: RETRIES
        value: 3
      - name: BACKOFF
        value: 0.5
  - name: flags
    constants:
      - name: DEBUG
        value: false
`

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"manifest.yaml": &fstest.MapFile{Data: []byte(fixtureManifest)},
	}
}

func TestGenerateFromManifest(t *testing.T) {
	gen := generator.New()

	out, err := gen.Generate(context.Background(), generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
		Module:     "constants",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := strings.Join([]string{
		"# This file is automatically generated. Do not edit.",
		"",
		`"""Build constants."""`,
		"",
		`VERSION = "1.2.3"`,
		"RETRIES = 3",
		"BACKOFF = 0.5",
		"",
	}, "\n")

	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("generated module mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateModuleSelection(t *testing.T) {
	gen := generator.New()
	ctx := context.Background()

	// Ambiguous: two modules declared, none named.
	_, err := gen.Generate(ctx, generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
	})
	if err == nil {
		t.Fatal("Generate() did not require a module name")
	}

	// Unknown module.
	_, err = gen.Generate(ctx, generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
		Module:     "nope",
	})
	if err == nil {
		t.Fatal("Generate() accepted an undeclared module")
	}

	// Single-module manifests need no explicit name.
	fsys := fstest.MapFS{
		"single.yaml": &fstest.MapFile{Data: []byte(
			"modules:\n  - name: only\n    constants:\n      - name: X\n        value: 1\n",
		)},
	}
	out, err := gen.Generate(ctx, generator.Request{Manifest: "single.yaml", ManifestFS: fsys})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(string(out), "X = 1") {
		t.Fatalf("generated module missing binding:\n%s", out)
	}
}

func TestGenerateRequestValidation(t *testing.T) {
	gen := generator.New()
	ctx := context.Background()

	if _, err := gen.Generate(ctx, generator.Request{}); err == nil {
		t.Fatal("Generate() accepted an empty request")
	}

	_, err := gen.Generate(ctx, generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
		Document:   pkgopenapi.SourceFromFile("api.yaml"),
	})
	if err == nil {
		t.Fatal("Generate() accepted both a manifest and a document")
	}
}

func TestGenerateUnknownTarget(t *testing.T) {
	gen := generator.New()

	_, err := gen.Generate(context.Background(), generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
		Module:     "constants",
		Target:     "cobol",
	})
	if !errors.Is(err, literal.ErrRendererNotFound) {
		t.Fatalf("Generate() error = %v, want ErrRendererNotFound", err)
	}
}

type stubLoader struct {
	doc pkgopenapi.Document
	err error
}

func (s stubLoader) Load(_ context.Context, _ pkgopenapi.Source) (pkgopenapi.Document, error) {
	return s.doc, s.err
}

type stubParser struct {
	operations map[string]pkgopenapi.Operation
	err        error
}

func (s stubParser) Operations(_ context.Context, _ pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	return s.operations, s.err
}

func TestGenerateFromDocument(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("api.yaml"), []byte("openapi"))

	gen := generator.New(
		generator.WithLoader(stubLoader{doc: doc}),
		generator.WithParser(stubParser{operations: map[string]pkgopenapi.Operation{
			"listArticles": {
				ID:     "listArticles",
				Method: "GET",
				Path:   "/articles",
				Parameters: []pkgopenapi.Parameter{
					{Name: "limit", In: "query", Default: 20, HasDefault: true},
				},
			},
		}}),
	)

	out, err := gen.Generate(context.Background(), generator.Request{
		Document: pkgopenapi.SourceFromFile("api.yaml"),
		Module:   "rpc_defaults",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, `LIST_ARTICLES_DEFAULTS = {"limit":20}`) {
		t.Fatalf("generated module missing defaults table:\n%s", text)
	}
}

func TestGenerateDocumentStageErrors(t *testing.T) {
	ctx := context.Background()
	src := pkgopenapi.SourceFromFile("api.yaml")

	loadFailed := generator.New(generator.WithLoader(stubLoader{err: errors.New("boom")}))
	if _, err := loadFailed.Generate(ctx, generator.Request{Document: src}); err == nil {
		t.Fatal("Generate() swallowed loader failure")
	}

	doc := pkgopenapi.MustNewDocument(src, []byte("openapi"))
	parseFailed := generator.New(
		generator.WithLoader(stubLoader{doc: doc}),
		generator.WithParser(stubParser{err: errors.New("boom")}),
	)
	if _, err := parseFailed.Generate(ctx, generator.Request{Document: src}); err == nil {
		t.Fatal("Generate() swallowed parser failure")
	}
}

func TestGenerateHonoursContext(t *testing.T) {
	gen := generator.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, generator.Request{
		Manifest:   "manifest.yaml",
		ManifestFS: fixtureFS(),
		Module:     "constants",
	})
	if err == nil {
		t.Fatal("Generate() ignored cancelled context")
	}
}
