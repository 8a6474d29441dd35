package openapi

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/goliatone/go-pygen/pkg/emit"
	"github.com/goliatone/go-pygen/pkg/pyvalue"
)

// DefaultsModule assembles an emit.Module carrying one <OPID>_DEFAULTS dict
// per operation that declares parameter defaults, plus an <OPID>_CHOICES
// dict per operation whose parameters carry enums. Operations contributing
// neither are left out. Bindings are ordered by operation id, defaults
// before choices.
func DefaultsModule(moduleName string, operations map[string]Operation) (emit.Module, error) {
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var bindings []emit.Binding
	for _, id := range ids {
		op := operations[id]

		defaults, err := parameterDict(op.Defaults(), func(p Parameter) any { return p.Default })
		if err != nil {
			return emit.Module{}, fmt.Errorf("openapi: operation %q defaults: %w", id, err)
		}
		if defaults != nil {
			bindings = append(bindings, emit.Binding{
				Name:    constantName(id, "DEFAULTS"),
				Value:   *defaults,
				Comment: opComment(op),
			})
		}

		choices, err := parameterDict(op.Choices(), func(p Parameter) any { return p.Enum })
		if err != nil {
			return emit.Module{}, fmt.Errorf("openapi: operation %q choices: %w", id, err)
		}
		if choices != nil {
			bindings = append(bindings, emit.Binding{
				Name:  constantName(id, "CHOICES"),
				Value: *choices,
			})
		}
	}

	return emit.Module{
		Name:      moduleName,
		Docstring: "Argument defaults collected from the service contract.",
		Bindings:  bindings,
	}, nil
}

func parameterDict(params []Parameter, pick func(Parameter) any) (*pyvalue.Value, error) {
	if len(params) == 0 {
		return nil, nil
	}
	entries := make([]pyvalue.Entry, 0, len(params))
	for _, param := range params {
		value, err := pyvalue.FromGo(pick(param))
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		entries = append(entries, pyvalue.Entry{Key: pyvalue.Str(param.Name), Value: value})
	}
	dict := pyvalue.Dict(entries...)
	return &dict, nil
}

func opComment(op Operation) string {
	if op.Summary != "" {
		return fmt.Sprintf("%s %s: %s", op.Method, op.Path, op.Summary)
	}
	return fmt.Sprintf("%s %s", op.Method, op.Path)
}

// constantName derives an UPPER_SNAKE binding name from an operation id,
// which may be camelCase, kebab-case, or a synthetic "get:/path" id.
func constantName(opID, suffix string) string {
	var sb strings.Builder
	prevLower := false
	for _, r := range opID {
		switch {
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) && prevLower {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToUpper(r))
			prevLower = unicode.IsLower(r)
		case unicode.IsDigit(r):
			sb.WriteRune(r)
			prevLower = false
		default:
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "_") {
				sb.WriteByte('_')
			}
			prevLower = false
		}
	}
	name := strings.Trim(sb.String(), "_")
	if name == "" {
		name = "OPERATION"
	}
	return name + "_" + suffix
}
