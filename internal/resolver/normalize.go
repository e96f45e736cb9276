package resolver

import "github.com/griffnb/core-resolve/internal/domain"

// ObjectPredicate selects object types during response normalization.
type ObjectPredicate func(*domain.ObjectType) bool

// Normalize walks the operation's responses in declared order and collects
// every object type satisfying pred that is reachable from a response body:
// the body itself, a union variant, or a tuple element. Non-object members
// of unions and tuples are skipped rather than rejected.
//
// The second return value distinguishes "no response body qualified at all"
// (false) from a qualified result; when it is true the sequence is non-empty.
func Normalize(op *domain.Operation, pred ObjectPredicate) ([]*domain.ObjectType, bool) {
	var matched []*domain.ObjectType

	for _, resp := range op.Responses {
		switch body := resp.Body.(type) {
		case *domain.ObjectType:
			if pred(body) {
				matched = append(matched, body)
			}
		case *domain.UnionType:
			for _, variant := range body.Variants {
				if obj, ok := variant.Type.(*domain.ObjectType); ok && pred(obj) {
					matched = append(matched, obj)
				}
			}
		case *domain.TupleType:
			for _, element := range body.Elements {
				if obj, ok := element.(*domain.ObjectType); ok && pred(obj) {
					matched = append(matched, obj)
				}
			}
		case *domain.ScalarType, nil:
			// Scalar and absent bodies never contribute candidates.
		}
	}

	if matched == nil {
		return nil, false
	}
	return matched, true
}
