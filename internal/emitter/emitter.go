// Package emitter turns resolved operations into a Swagger 2.0 document.
// It consumes the resolver's classification results and never inspects the
// type graph beyond the contract surface the resolver exposes.
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-resolve/internal/diagnostic"
	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/griffnb/core-resolve/internal/resolver"
)

// FlattenFunc resolves the full field set of an object type. The default is
// resolver.Flatten; the orchestrator injects a memoized variant when it
// renders many operations over the same graph.
type FlattenFunc func(*domain.ObjectType) (*domain.FieldMap, error)

// Service converts operations and definitions to go-openapi spec values.
type Service struct {
	flatten FlattenFunc
}

// NewService creates an emitter. A nil flatten falls back to the plain
// resolver walk.
func NewService(flatten FlattenFunc) *Service {
	if flatten == nil {
		flatten = resolver.Flatten
	}
	return &Service{flatten: flatten}
}

// OperationSpec builds the spec operation for one resolved operation. The
// success body is resolved through the diagnostic boundary, so an operation
// without one still emits (with a default-only response set) and the miss is
// reported through sink.
func (s *Service) OperationSpec(op *domain.Operation, sink diagnostic.Sink) (*spec.Operation, error) {
	success, err := resolver.RequireSuccessBody(op, sink)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", op.Name, err)
	}

	operation := &spec.Operation{
		OperationProps: spec.OperationProps{
			ID:       op.Name,
			Produces: []string{"application/json"},
		},
		VendorExtensible: spec.VendorExtensible{
			Extensions: make(spec.Extensions),
		},
	}

	responses := &spec.Responses{
		ResponsesProps: spec.ResponsesProps{
			StatusCodeResponses: make(map[int]spec.Response),
		},
	}

	for _, resp := range op.Responses {
		bodies, ok := resolver.Normalize(
			&domain.Operation{Name: op.Name, Responses: []*domain.Response{resp}},
			func(*domain.ObjectType) bool { return true },
		)
		if !ok {
			continue
		}

		for _, body := range bodies {
			code, explicit, err := s.statusCode(body)
			if err != nil {
				return nil, fmt.Errorf("status code of %s in %s: %w", body.Name, op.Name, err)
			}

			entry := spec.Response{
				ResponseProps: spec.ResponseProps{
					Description: responseDescription(resp, body),
					Schema:      typeSchema(body),
				},
			}

			switch {
			case explicit:
				responses.StatusCodeResponses[code] = entry
			case body == success:
				// Implicit success bodies document under the default 200.
				if _, taken := responses.StatusCodeResponses[200]; !taken {
					responses.StatusCodeResponses[200] = entry
				}
			default:
				if responses.Default == nil {
					responses.Default = &entry
				}
			}
		}
	}

	operation.Responses = responses
	return operation, nil
}

// Definitions collects the schema for every named object type reachable from
// the service's responses, including bases and field types.
func (s *Service) Definitions(svc *domain.Service) spec.Definitions {
	definitions := make(spec.Definitions)
	visited := make(map[*domain.ObjectType]struct{})

	for _, op := range svc.Operations {
		for _, resp := range op.Responses {
			s.collectNode(resp.Body, definitions, visited)
		}
	}

	return definitions
}

func (s *Service) collectNode(node domain.TypeNode, definitions spec.Definitions, visited map[*domain.ObjectType]struct{}) {
	switch t := node.(type) {
	case *domain.ObjectType:
		s.collectObject(t, definitions, visited)
	case *domain.UnionType:
		for _, variant := range t.Variants {
			s.collectNode(variant.Type, definitions, visited)
		}
	case *domain.TupleType:
		for _, element := range t.Elements {
			s.collectNode(element, definitions, visited)
		}
	}
}

func (s *Service) collectObject(model *domain.ObjectType, definitions spec.Definitions, visited map[*domain.ObjectType]struct{}) {
	if model == nil {
		return
	}
	if _, seen := visited[model]; seen {
		return
	}
	visited[model] = struct{}{}

	if model.Name != "" {
		definitions[model.Name] = *objectSchema(model)
	}

	if model.Fields != nil {
		model.Fields.Range(func(_ string, f *domain.Field) bool {
			s.collectNode(f.Type, definitions, visited)
			return true
		})
	}

	s.collectObject(model.Base, definitions, visited)
}

// statusCode extracts the literal status code from the body's flattened
// status-code field. explicit is false when the body declares no status
// field or the literal is not reducible to an integer.
func (s *Service) statusCode(model *domain.ObjectType) (code int, explicit bool, err error) {
	fields, err := s.flatten(model)
	if err != nil {
		return 0, false, err
	}

	status, ok := fields.First(func(f *domain.Field) bool {
		return f.IsStatusCode
	})
	if !ok {
		return 0, false, nil
	}

	scalar, ok := status.Type.(*domain.ScalarType)
	if !ok {
		return 0, false, nil
	}

	switch v := scalar.Literal.(type) {
	case string:
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, false, nil
		}
		return n, true, nil
	case float64:
		return int(v), true, nil
	case int:
		return v, true, nil
	default:
		return 0, false, nil
	}
}

func responseDescription(resp *domain.Response, body *domain.ObjectType) string {
	if resp.Description != "" {
		return resp.Description
	}
	if body.IsError {
		return "Error"
	}
	if body.Name != "" {
		return body.Name
	}
	return "OK"
}

// PathFor derives the documentation path for an operation name of the form
// Group_Action: collection actions document under /group, item actions under
// /group/{id}, anything else under /group/action.
func PathFor(op *domain.Operation) string {
	group := op.Name
	action := ""
	if idx := strings.Index(op.Name, "_"); idx > 0 {
		group = op.Name[:idx]
		action = strings.ToLower(op.Name[idx+1:])
	}
	base := "/" + strings.ToLower(group)

	switch action {
	case "", "list", "create":
		return base
	case "get", "update", "replace", "patch", "delete":
		return base + "/{id}"
	default:
		return base + "/" + action
	}
}

// MethodFor derives the documentation verb from the operation's action
// suffix. Unknown actions document as GET.
func MethodFor(op *domain.Operation) string {
	name := op.Name
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		name = name[idx+1:]
	}

	switch strings.ToLower(name) {
	case "create":
		return "POST"
	case "update", "replace":
		return "PUT"
	case "patch":
		return "PATCH"
	case "delete", "purge":
		return "DELETE"
	default:
		return "GET"
	}
}
