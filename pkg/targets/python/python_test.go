package python_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pygen/pkg/pyvalue"
	"github.com/goliatone/go-pygen/pkg/targets/python"
)

func TestRenderScalars(t *testing.T) {
	renderer := python.New()

	cases := []struct {
		name  string
		value pyvalue.Value
		want  string
	}{
		{"true", pyvalue.Bool(true), "True"},
		{"false", pyvalue.Bool(false), "False"},
		{"none", pyvalue.None(), "None"},
		{"zero value", pyvalue.Value{}, "None"},
		{"int", pyvalue.Int(42), "42"},
		{"negative int", pyvalue.Int(-7), "-7"},
		{"large int", pyvalue.Int(9223372036854775807), "9223372036854775807"},
		{"float", pyvalue.Float(2.5), "2.5"},
		{"whole float gets fraction", pyvalue.Float(1), "1.0"},
		{"negative zero", pyvalue.Float(math.Copysign(0, -1)), "-0.0"},
		{"large float keeps exponent", pyvalue.Float(1e21), "1e+21"},
		{"nan", pyvalue.Float(math.NaN()), `float("nan")`},
		{"positive infinity", pyvalue.Float(math.Inf(1)), `float("inf")`},
		{"negative infinity", pyvalue.Float(math.Inf(-1)), `float("-inf")`},
		{"char", pyvalue.Char('a'), `"a"`},
		{"char escaped", pyvalue.Char('\n'), `"\n"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Render(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderStrings(t *testing.T) {
	renderer := python.New()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", `""`},
		{"plain", "hello", `"hello"`},
		{"embedded quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"nul byte", "\x00", `"\x00"`},
		{"bell", "\x07", `"\x07"`},
		{"latin-1 control", "\u009f", `"\x9f"`},
		{"printable unicode kept", "héllo", `"héllo"`},
		{"line separator escaped", "a\u2028b", `"a\u2028b"`},
		{"wide code point", "a\U0010FFFDb", `"a\U0010fffdb"`},
		{"invalid utf-8 byte", string([]byte{0x61, 0xff, 0x62}), `"a\xffb"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Render(pyvalue.Str(tc.input))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderCompounds(t *testing.T) {
	renderer := python.New()

	cases := []struct {
		name  string
		value pyvalue.Value
		want  string
	}{
		{
			"list in order",
			pyvalue.List(pyvalue.Int(1), pyvalue.Int(2), pyvalue.Int(3)),
			"[1, 2, 3]",
		},
		{
			"empty list",
			pyvalue.List(),
			"[]",
		},
		{
			"nested list",
			pyvalue.List(
				pyvalue.List(pyvalue.Int(1), pyvalue.Int(2)),
				pyvalue.List(pyvalue.Int(3)),
			),
			"[[1, 2], [3]]",
		},
		{
			"mixed list",
			pyvalue.List(pyvalue.Str("a"), pyvalue.Bool(true), pyvalue.Float(0.5)),
			`["a", True, 0.5]`,
		},
		{
			"pair",
			pyvalue.PairOf(pyvalue.Str("a"), pyvalue.Int(1)),
			`("a", 1)`,
		},
		{
			"nested pair",
			pyvalue.PairOf(pyvalue.PairOf(pyvalue.Int(1), pyvalue.Int(2)), pyvalue.Str("x")),
			`((1, 2), "x")`,
		},
		{
			"dict sorted by rendered key",
			pyvalue.Dict(
				pyvalue.Entry{Key: pyvalue.Str("y"), Value: pyvalue.Int(2)},
				pyvalue.Entry{Key: pyvalue.Str("x"), Value: pyvalue.Int(1)},
			),
			`{"x":1, "y":2}`,
		},
		{
			"dict with compound key and value",
			pyvalue.Dict(
				pyvalue.Entry{Key: pyvalue.Int(1), Value: pyvalue.List(pyvalue.Str("a"))},
			),
			`{1:["a"]}`,
		},
		{
			"empty dict",
			pyvalue.Dict(),
			"{}",
		},
		{
			"set ordered deterministically",
			pyvalue.Set(pyvalue.Int(3), pyvalue.Int(1), pyvalue.Int(2)),
			"[1, 2, 3]",
		},
		{
			"empty set",
			pyvalue.Set(),
			"[]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Render(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderSetMatchesSortedList(t *testing.T) {
	renderer := python.New()

	elements := []pyvalue.Value{pyvalue.Str("pear"), pyvalue.Str("apple"), pyvalue.Str("fig")}
	ordered := []pyvalue.Value{pyvalue.Str("apple"), pyvalue.Str("fig"), pyvalue.Str("pear")}

	setLiteral := renderer.Render(pyvalue.Set(elements...))
	listLiteral := renderer.Render(pyvalue.List(ordered...))
	if setLiteral != listLiteral {
		t.Fatalf("set literal %q does not match ordered list literal %q", setLiteral, listLiteral)
	}
}

func TestRenderListContainsElementsInOrder(t *testing.T) {
	renderer := python.New()

	elems := []pyvalue.Value{pyvalue.Str("first"), pyvalue.Int(2), pyvalue.Bool(false)}
	literal := renderer.Render(pyvalue.List(elems...))

	offset := 0
	for _, elem := range elems {
		rendered := renderer.Render(elem)
		idx := strings.Index(literal[offset:], rendered)
		if idx < 0 {
			t.Fatalf("literal %q is missing element %q after offset %d", literal, rendered, offset)
		}
		offset += idx + len(rendered)
	}
}

func TestRenderLegacyElementQuoting(t *testing.T) {
	renderer := python.New(python.WithLegacyElementQuoting())

	cases := []struct {
		name  string
		value pyvalue.Value
		want  string
	}{
		{
			"list elements quoted",
			pyvalue.List(pyvalue.Int(1), pyvalue.Int(2)),
			`["1", "2"]`,
		},
		{
			"pair elements quoted",
			pyvalue.PairOf(pyvalue.Int(1), pyvalue.Bool(true)),
			`("1", "True")`,
		},
		{
			"set elements quoted",
			pyvalue.Set(pyvalue.Int(2), pyvalue.Int(1)),
			`["1", "2"]`,
		},
		{
			"scalars unaffected",
			pyvalue.Int(5),
			"5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderer.Render(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRendererMetadata(t *testing.T) {
	renderer := python.New()
	if renderer.Name() != "python" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.FileExtension() != ".py" {
		t.Fatalf("unexpected extension %q", renderer.FileExtension())
	}
}
