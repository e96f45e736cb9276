package resolver

import "github.com/griffnb/core-resolve/internal/domain"

// FieldPredicate selects fields during search.
type FieldPredicate func(*domain.Field) bool

// FindField locates the first response body, in declared order, whose
// flattened field set contains a field satisfying pred, and returns that
// owning object type paired with the first matching field in flattened
// insertion order. The boolean is false when no response contains a match.
func FindField(op *domain.Operation, pred FieldPredicate) (*domain.ObjectType, *domain.Field, bool, error) {
	var walkErr error

	candidates, ok := Normalize(op, func(m *domain.ObjectType) bool {
		if walkErr != nil {
			return false
		}
		fields, err := Flatten(m)
		if err != nil {
			walkErr = err
			return false
		}
		_, found := fields.First(pred)
		return found
	})
	if walkErr != nil {
		return nil, nil, false, walkErr
	}
	if !ok {
		return nil, nil, false, nil
	}

	owner := candidates[0]
	fields, err := Flatten(owner)
	if err != nil {
		return nil, nil, false, err
	}

	// The selecting predicate already proved a match exists, but the result
	// is re-checked rather than assumed.
	field, found := fields.First(pred)
	if !found {
		return nil, nil, false, nil
	}

	return owner, field, true, nil
}
