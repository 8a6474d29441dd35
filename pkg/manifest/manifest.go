// Package manifest loads the YAML/JSON documents that declare which Python
// modules to generate and the constants each one carries. Values decode as
// native Go values and convert into the closed shape model through
// pyvalue.FromGo, so a malformed value fails at load time rather than inside
// a renderer.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pygen/pkg/emit"
	"github.com/goliatone/go-pygen/pkg/pyvalue"
)

// Constant is one declared binding: a name, an arbitrary YAML value, and an
// optional comment emitted above the binding.
type Constant struct {
	Name    string `yaml:"name" json:"name"`
	Value   any    `yaml:"value" json:"value"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Module declares one generated file.
type Module struct {
	Name      string     `yaml:"name" json:"name"`
	Docstring string     `yaml:"docstring,omitempty" json:"docstring,omitempty"`
	Constants []Constant `yaml:"constants" json:"constants"`
}

// Manifest is the root document.
type Manifest struct {
	Modules []Module `yaml:"modules" json:"modules"`
}

// Load reads and parses a manifest from a file path.
func Load(path string) (Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return Manifest{}, errors.New("manifest: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a manifest from an fs.FS.
func LoadFS(fsys fs.FS, name string) (Manifest, error) {
	if fsys == nil {
		return Manifest{}, errors.New("manifest: fs is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes manifest bytes. YAML is a superset of JSON, so both formats
// go through the same decoder. The result is validated before returning.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks structural rules the decoder cannot: at least one module,
// unique module names, named constants.
func (m Manifest) Validate() error {
	if len(m.Modules) == 0 {
		return errors.New("manifest: no modules declared")
	}

	seen := make(map[string]struct{}, len(m.Modules))
	for _, module := range m.Modules {
		name := strings.TrimSpace(module.Name)
		if name == "" {
			return errors.New("manifest: module name is required")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("manifest: duplicate module %q", name)
		}
		seen[name] = struct{}{}

		for i, constant := range module.Constants {
			if strings.TrimSpace(constant.Name) == "" {
				return fmt.Errorf("manifest: module %q constant %d has no name", name, i)
			}
		}
	}
	return nil
}

// Module returns the declared module with the given name.
func (m Manifest) Module(name string) (Module, bool) {
	for _, module := range m.Modules {
		if module.Name == name {
			return module, true
		}
	}
	return Module{}, false
}

// ModuleNames returns the declared module names, sorted.
func (m Manifest) ModuleNames() []string {
	names := make([]string, 0, len(m.Modules))
	for _, module := range m.Modules {
		names = append(names, module.Name)
	}
	sort.Strings(names)
	return names
}

// EmitModule converts a declared module into an emit.Module, converting each
// constant value into the shape model.
func (mod Module) EmitModule() (emit.Module, error) {
	bindings := make([]emit.Binding, 0, len(mod.Constants))
	for _, constant := range mod.Constants {
		value, err := pyvalue.FromGo(constant.Value)
		if err != nil {
			return emit.Module{}, fmt.Errorf("manifest: module %q constant %q: %w", mod.Name, constant.Name, err)
		}
		bindings = append(bindings, emit.Binding{
			Name:    constant.Name,
			Value:   value,
			Comment: constant.Comment,
		})
	}
	return emit.Module{
		Name:      mod.Name,
		Docstring: mod.Docstring,
		Bindings:  bindings,
	}, nil
}
