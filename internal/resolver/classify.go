package resolver

import (
	"strings"

	"github.com/griffnb/core-resolve/internal/domain"
)

// SuccessBody classifies the operation's responses and returns the first
// object type, in declaration order, that represents a success outcome: a
// type not marked as an error whose status-code field is either absent
// (implicitly successful) or carries a 2xx literal. The boolean is false
// when no candidate survives. An error is returned only when the type graph
// itself is malformed.
func SuccessBody(op *domain.Operation) (*domain.ObjectType, bool, error) {
	candidates, ok := Normalize(op, func(m *domain.ObjectType) bool {
		return !m.IsError
	})
	if !ok {
		return nil, false, nil
	}

	for _, candidate := range candidates {
		pass, err := isSuccessCandidate(candidate)
		if err != nil {
			return nil, false, err
		}
		if pass {
			return candidate, true, nil
		}
	}

	return nil, false, nil
}

// isSuccessCandidate applies the status-code heuristic to one non-error
// candidate. A body with no status-code field relies on a default code and
// counts as successful; a status-code field whose value is not a recognized
// string or number literal excludes the candidate.
func isSuccessCandidate(model *domain.ObjectType) (bool, error) {
	fields, err := Flatten(model)
	if err != nil {
		return false, err
	}

	status, ok := fields.First(func(f *domain.Field) bool {
		return f.IsStatusCode
	})
	if !ok {
		return true, nil
	}

	return isSuccessStatus(status), nil
}

// isSuccessStatus reports whether the status-code field carries a 2xx-class
// literal: a string starting with "2" or a number in [200, 300).
func isSuccessStatus(f *domain.Field) bool {
	scalar, ok := f.Type.(*domain.ScalarType)
	if !ok {
		return false
	}

	switch v := scalar.Literal.(type) {
	case string:
		return strings.HasPrefix(v, "2")
	case float64:
		return v >= 200 && v < 300
	case int:
		return v >= 200 && v < 300
	default:
		return false
	}
}
