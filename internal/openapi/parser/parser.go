// Package parser implements the public openapi.Parser contract using
// kin-openapi. It walks every operation in a document and collects the
// parameter and request-body metadata needed to build argument-default
// tables.
package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-pygen/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if (spec.Paths == nil || spec.Paths.Len() == 0) && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}

	if err := p.resolveReferences(ctx, spec); err != nil {
		return nil, err
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			p.collectOperation(ctx, operations, "GET", path, item.Get)
			p.collectOperation(ctx, operations, "PUT", path, item.Put)
			p.collectOperation(ctx, operations, "POST", path, item.Post)
			p.collectOperation(ctx, operations, "DELETE", path, item.Delete)
			p.collectOperation(ctx, operations, "PATCH", path, item.Patch)
			p.collectOperation(ctx, operations, "HEAD", path, item.Head)
			p.collectOperation(ctx, operations, "OPTIONS", path, item.Options)
			p.collectOperation(ctx, operations, "TRACE", path, item.Trace)
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	return operations, nil
}

func (p *Parser) resolveReferences(ctx context.Context, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) {
	if ctx.Err() != nil {
		return
	}
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	params := collectParameters(operation.Parameters)
	params = append(params, collectBodyFields(operation.RequestBody)...)

	op, err := pkgopenapi.NewOperation(opID, method, path, params)
	if err != nil {
		// Invalid operations are skipped by leaving them out.
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	target[opID] = op
}

func collectParameters(refs openapi3.Parameters) []pkgopenapi.Parameter {
	var out []pkgopenapi.Parameter
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		param := pkgopenapi.Parameter{
			Name:     ref.Value.Name,
			In:       ref.Value.In,
			Required: ref.Value.Required,
		}
		if schema := schemaValue(ref.Value.Schema); schema != nil {
			param.Default = schema.Default
			param.HasDefault = schema.Default != nil
			param.Enum = append([]any(nil), schema.Enum...)
		}
		out = append(out, param)
	}
	return out
}

// collectBodyFields flattens the top-level properties of the request body
// schema into body parameters. Nested objects stay opaque: their whole
// default (if any) rides along as the property default.
func collectBodyFields(body *openapi3.RequestBodyRef) []pkgopenapi.Parameter {
	if body == nil || body.Value == nil {
		return nil
	}

	schema := requestSchema(body.Value.Content)
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]pkgopenapi.Parameter, 0, len(names))
	for _, name := range names {
		prop := schemaValue(schema.Properties[name])
		param := pkgopenapi.Parameter{
			Name: name,
			In:   "body",
		}
		if _, ok := required[name]; ok {
			param.Required = true
		}
		if prop != nil {
			param.Default = prop.Default
			param.HasDefault = prop.Default != nil
			param.Enum = append([]any(nil), prop.Enum...)
		}
		out = append(out, param)
	}
	return out
}

func requestSchema(content openapi3.Content) *openapi3.Schema {
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return schemaValue(mt.Schema)
		}
	}
	for _, mt := range content {
		return schemaValue(mt.Schema)
	}
	return nil
}

func schemaValue(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}
