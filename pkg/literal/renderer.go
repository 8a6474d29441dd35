package literal

import (
	"errors"

	"github.com/goliatone/go-pygen/pkg/pyvalue"
)

// Renderer emits target-language literal text for values of the closed shape
// set. Render is total: every well-formed Value has a literal, so there is no
// error path — a value the target grammar cannot express gets a pinned
// spelling instead (renderers document those).
type Renderer interface {
	// Name identifies the target language in the registry ("python").
	Name() string

	// FileExtension is the conventional extension for generated files,
	// including the leading dot (".py").
	FileExtension() string

	// Render produces the literal source text for the value.
	Render(value pyvalue.Value) string
}

// Sentinel errors for registry lookups so callers can branch with errors.Is.
var (
	ErrRendererExists   = errors.New("literal: renderer already registered")
	ErrRendererNotFound = errors.New("literal: renderer not found")
)
