package resolver

import (
	"testing"

	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isStatusCodeField(f *domain.Field) bool { return f.IsStatusCode }

func TestFindField_AbsentWhenNothingTagged(t *testing.T) {
	// A page body with nextLink/value but no status tag yields absent
	page := domain.NewObject("Page",
		domain.NewField("nextLink", domain.String()),
		domain.NewField("value", domain.Tuple(domain.String())),
	)

	owner, field, ok, err := FindField(opWithBodies(page), isStatusCodeField)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, owner)
	assert.Nil(t, field)
}

func TestFindField_ReturnsOwnerAndField(t *testing.T) {
	status := domain.StatusCodeField(200)
	page := domain.NewObject("Page",
		domain.NewField("nextLink", domain.String()),
		status,
	)

	owner, field, ok, err := FindField(opWithBodies(page), isStatusCodeField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, page, owner)
	assert.Same(t, status, field)
}

func TestFindField_FirstResponseWins(t *testing.T) {
	// The first response containing a match owns the result
	first := domain.NewObject("First", domain.StatusCodeField(200))
	second := domain.NewObject("Second", domain.StatusCodeField(201))

	owner, _, ok, err := FindField(opWithBodies(first, second), isStatusCodeField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, first, owner)
}

func TestFindField_SkipsNonMatchingResponses(t *testing.T) {
	plain := domain.NewObject("Plain", domain.NewField("id", domain.String()))
	tagged := domain.NewObject("Tagged", domain.StatusCodeField(204))

	owner, field, ok, err := FindField(opWithBodies(plain, tagged), isStatusCodeField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, tagged, owner)
	assert.True(t, field.IsStatusCode)
}

func TestFindField_MatchesInheritedField(t *testing.T) {
	// The predicate sees flattened fields, so base declarations match too
	envelope := domain.NewObject("Envelope", domain.StatusCodeField("202"))
	resource := domain.Extend("Resource", envelope, domain.NewField("id", domain.String()))

	owner, field, ok, err := FindField(opWithBodies(resource), isStatusCodeField)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, resource, owner)
	assert.True(t, field.IsStatusCode)
}

func TestFindField_FlattenedInsertionOrder(t *testing.T) {
	// The first matching field in flattened order is returned
	isString := func(f *domain.Field) bool {
		scalar, ok := f.Type.(*domain.ScalarType)
		return ok && scalar.Kind == domain.ScalarString
	}

	obj := domain.NewObject("Widget",
		domain.NewField("weight", domain.Number()),
		domain.NewField("name", domain.String()),
		domain.NewField("color", domain.String()),
	)

	_, field, ok, err := FindField(opWithBodies(obj), isString)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "name", field.Name)
}

func TestFindField_CyclicGraphFails(t *testing.T) {
	a := domain.NewObject("A", domain.StatusCodeField(200))
	b := domain.Extend("B", a)
	a.Base = b

	_, _, _, err := FindField(opWithBodies(b), isStatusCodeField)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInheritanceCycle)
}

func TestFindField_NoResponses(t *testing.T) {
	_, _, ok, err := FindField(&domain.Operation{Name: "Empty_Op"}, isStatusCodeField)
	require.NoError(t, err)
	assert.False(t, ok)
}
