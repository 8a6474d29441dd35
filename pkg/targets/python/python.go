// Package python renders values into Python literal source text. The output
// grammar is a compatibility contract with Python's parser: every rendered
// literal must ast.literal_eval back to the value it came from (NaN and the
// infinities get float() call spellings since the grammar has no literal for
// them).
package python

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-pygen/pkg/literal"
	"github.com/goliatone/go-pygen/pkg/pyvalue"
)

// Name is the registry name for this renderer.
const Name = "python"

// Option customises the renderer before construction.
type Option func(*Renderer)

// WithLegacyElementQuoting reproduces the historical generator's habit of
// stringifying compound elements twice: list, set, and tuple elements are
// rendered and the rendered text is then itself quoted as a string, so
// [1, 2] comes out as ["1", "2"]. Only consumers that diff against the old
// generator's output want this.
func WithLegacyElementQuoting() Option {
	return func(r *Renderer) {
		r.legacyElementQuoting = true
	}
}

// Renderer emits Python literals. The zero value is usable; New applies
// options.
type Renderer struct {
	legacyElementQuoting bool
}

// Ensure the implementation satisfies the registry contract.
var _ literal.Renderer = (*Renderer)(nil)

// New constructs a Renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name identifies the target language.
func (r *Renderer) Name() string {
	return Name
}

// FileExtension is the conventional extension for generated files.
func (r *Renderer) FileExtension() string {
	return ".py"
}

// Render produces the Python literal for the value. It is total over the
// shape set and safe for concurrent use.
func (r *Renderer) Render(value pyvalue.Value) string {
	switch value.Kind() {
	case pyvalue.KindNone:
		return "None"
	case pyvalue.KindBool:
		b, _ := value.AsBool()
		if b {
			return "True"
		}
		return "False"
	case pyvalue.KindInt:
		n, _ := value.AsInt()
		return strconv.FormatInt(n, 10)
	case pyvalue.KindFloat:
		f, _ := value.AsFloat()
		return formatFloat(f)
	case pyvalue.KindChar, pyvalue.KindStr:
		s, _ := value.AsStr()
		return quoteString(s)
	case pyvalue.KindList:
		elems, _ := value.Elems()
		return "[" + strings.Join(r.renderElements(elems), ", ") + "]"
	case pyvalue.KindSet:
		elems, _ := value.Elems()
		rendered := r.renderElements(elems)
		sort.Strings(rendered)
		return "[" + strings.Join(rendered, ", ") + "]"
	case pyvalue.KindPair:
		first, second, _ := value.Pair()
		return "(" + r.renderElement(first) + ", " + r.renderElement(second) + ")"
	case pyvalue.KindDict:
		entries, _ := value.Entries()
		return r.renderDict(entries)
	}
	// Unreachable for values built through pyvalue constructors.
	return "None"
}

func (r *Renderer) renderElements(elems []pyvalue.Value) []string {
	rendered := make([]string, len(elems))
	for i, elem := range elems {
		rendered[i] = r.renderElement(elem)
	}
	return rendered
}

func (r *Renderer) renderElement(elem pyvalue.Value) string {
	text := r.Render(elem)
	if r.legacyElementQuoting {
		return quoteString(text)
	}
	return text
}

// renderDict emits {k1:v1, k2:v2} with entries sorted by rendered key so the
// same mapping always produces the same literal text.
func (r *Renderer) renderDict(entries []pyvalue.Entry) string {
	rendered := make([]string, len(entries))
	for i, entry := range entries {
		rendered[i] = r.Render(entry.Key) + ":" + r.Render(entry.Value)
	}
	sort.Strings(rendered)
	return "{" + strings.Join(rendered, ", ") + "}"
}

// formatFloat pins the float spelling: shortest round-trip decimal, forced to
// carry a fractional part or exponent so the literal stays a float in the
// target grammar. NaN and the infinities have no Python literal and render
// as float() calls.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return `float("nan")`
	case math.IsInf(f, 1):
		return `float("inf")`
	case math.IsInf(f, -1):
		return `float("-inf")`
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString emits a double-quoted Python string literal. Backslashes,
// double quotes, and the common control characters use their short escapes;
// other non-printable characters escape as \xHH, \uXXXX, or \UXXXXXXXX by
// code point width. Bytes that are not valid UTF-8 escape individually as
// \xHH so the literal still parses.
func quoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(hexEscape(rune(s[i])))
			i++
			continue
		}
		sb.WriteString(escapeRune(r))
		i += size
	}

	sb.WriteByte('"')
	return sb.String()
}

func escapeRune(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '"':
		return `\"`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if strconv.IsPrint(r) {
		return string(r)
	}
	switch {
	case r < 0x100:
		return hexEscape(r)
	case r < 0x10000:
		return `\u` + hexDigits(uint32(r), 4)
	default:
		return `\U` + hexDigits(uint32(r), 8)
	}
}

func hexEscape(r rune) string {
	return `\x` + hexDigits(uint32(r), 2)
}

func hexDigits(v uint32, width int) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
