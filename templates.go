package pygen

import (
	"io/fs"

	"github.com/goliatone/go-pygen/pkg/emit"
)

// EmbeddedTemplates exposes the built-in module templates so callers can
// reuse or extend them without importing the emitter package directly.
func EmbeddedTemplates() fs.FS {
	return emit.TemplatesFS()
}
