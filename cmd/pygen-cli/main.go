package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-pygen/internal/openapi/loader"
	"github.com/goliatone/go-pygen/internal/prompt"
	"github.com/goliatone/go-pygen/pkg/generator"
	"github.com/goliatone/go-pygen/pkg/manifest"
	pkgopenapi "github.com/goliatone/go-pygen/pkg/openapi"
)

func main() {
	manifestPath := flag.String("manifest", "", "constants manifest path (YAML or JSON)")
	source := flag.String("source", "", "OpenAPI document path or URL")
	module := flag.String("module", "", "module to generate (defaults to the only declared module)")
	target := flag.String("target", generator.DefaultTarget, "literal renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "pick the module interactively when several are declared")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *manifestPath == "" && *source == "" {
		log.Fatalf("need -manifest or -source")
	}
	if *manifestPath != "" && *source != "" {
		log.Fatalf("-manifest and -source are mutually exclusive")
	}

	ctx := context.Background()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("create logger: %v", err)
		}
		defer func() { _ = dev.Sync() }()
		logger = dev
	}

	moduleName := *module
	if *interactive && *manifestPath != "" && moduleName == "" {
		selected, err := selectModule(ctx, *manifestPath)
		if err != nil {
			log.Fatalf("select module: %v", err)
		}
		moduleName = selected
	}

	gen := generator.New(
		generator.WithLogger(logger),
		generator.WithLoader(internalLoader.New(pkgopenapi.NewLoaderOptions(
			pkgopenapi.WithHTTPFallback(30*time.Second),
		))),
	)

	req := generator.Request{
		Manifest: *manifestPath,
		Module:   moduleName,
		Target:   *target,
	}
	if *source != "" {
		req.Document = parseSource(*source)
		if req.Document == nil {
			log.Fatalf("invalid source: %q", *source)
		}
	}

	generated, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, generated, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Module written to %s\n", *output)
	} else {
		fmt.Print(string(generated))
	}
}

func selectModule(ctx context.Context, path string) (string, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return "", err
	}
	names := m.ModuleNames()
	if len(names) == 1 {
		return names[0], nil
	}

	driver := prompt.NewSurveyDriver()
	idx, err := driver.Select(ctx, "Which module should be generated?", names)
	if err != nil {
		return "", err
	}
	return names[idx], nil
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
