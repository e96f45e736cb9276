// Package resolver implements the read-only semantic queries over the type
// graph: inheritance-chain flattening, response shape normalization, success
// classification, field search, and the diagnostic boundary on top of them.
// Everything below the boundary is pure and safe for concurrent use on a
// frozen graph.
package resolver

import (
	"errors"
	"fmt"

	"github.com/griffnb/core-resolve/internal/domain"
)

// ErrInheritanceCycle indicates the supplied type graph violates the acyclic
// inheritance guarantee. This is an upstream contract violation, never a
// normal "no match" outcome.
var ErrInheritanceCycle = errors.New("inheritance cycle in type graph")

// Flatten resolves the full field set of an object type across its
// inheritance chain: every name reachable from model maps to the declaration
// from the most-derived type that declares it, in leaf-to-base, declaration
// order. A type with no base and no fields yields an empty map.
func Flatten(model *domain.ObjectType) (*domain.FieldMap, error) {
	return FlattenInto(model, nil)
}

// FlattenInto is the continuation form of Flatten: fields are merged into
// acc, never overwriting entries already present. A nil acc starts a fresh
// accumulation. The walk is iterative and guarded against cycles.
func FlattenInto(model *domain.ObjectType, acc *domain.FieldMap) (*domain.FieldMap, error) {
	if acc == nil {
		acc = domain.NewFieldMap()
	}

	visited := make(map[*domain.ObjectType]struct{})
	for current := model; current != nil; current = current.Base {
		if _, seen := visited[current]; seen {
			return nil, fmt.Errorf("%w: type %q revisits itself", ErrInheritanceCycle, current.Name)
		}
		visited[current] = struct{}{}

		if current.Fields == nil {
			continue
		}
		current.Fields.Range(func(name string, f *domain.Field) bool {
			acc.Add(name, f)
			return true
		})
	}

	return acc, nil
}
