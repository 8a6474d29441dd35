package pygen_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pygen "github.com/goliatone/go-pygen"
)

func TestGenerateModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	payload := strings.Join([]string{
		"modules:",
		"  - name: build_info",
		"    docstring: Build metadata.",
		"    constants:",
		"      - name: VERSION",
		`        value: "0.1.0"`,
		"      - name: FEATURES",
		"        value: [alpha, beta]",
	}, "\n")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	out, err := pygen.GenerateModule(context.Background(), path, "build_info")
	if err != nil {
		t.Fatalf("GenerateModule() error: %v", err)
	}

	text := string(out)
	for _, fragment := range []string{
		`"""Build metadata."""`,
		`VERSION = "0.1.0"`,
		`FEATURES = ["alpha", "beta"]`,
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("generated module missing %q:\n%s", fragment, text)
		}
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := pygen.EmbeddedTemplates()

	data, err := fs.ReadFile(fsys, "module.py.tpl")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("embedded template is empty")
	}
}
