package resolver

import (
	"fmt"
	"testing"

	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_NoBaseNoFields(t *testing.T) {
	// An empty leaf type yields an empty map, not a failure
	fields, err := Flatten(domain.NewObject("Empty"))
	require.NoError(t, err)
	assert.Equal(t, 0, fields.Len())
}

func TestFlatten_SingleType(t *testing.T) {
	obj := domain.NewObject("Widget",
		domain.NewField("id", domain.String()),
		domain.NewField("weight", domain.Number()),
	)

	fields, err := Flatten(obj)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "weight"}, fields.Names())
}

func TestFlatten_InheritedFieldsAppendAfterOwn(t *testing.T) {
	// Leaf fields come first, base fields follow in chain order
	base := domain.NewObject("Base",
		domain.NewField("created", domain.String()),
	)
	derived := domain.Extend("Derived", base,
		domain.NewField("id", domain.String()),
	)

	fields, err := Flatten(derived)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "created"}, fields.Names())
}

func TestFlatten_OverridePrecedence(t *testing.T) {
	// Three levels declaring "id": the most-derived declaration wins
	grandparent := domain.NewObject("Grandparent",
		domain.NewField("id", domain.Number()),
	)
	parent := domain.Extend("Parent", grandparent,
		domain.NewField("id", domain.String()),
	)
	childID := domain.NewField("id", domain.StringLiteral("child"))
	child := domain.Extend("Child", parent, childID)

	fields, err := Flatten(child)
	require.NoError(t, err)

	got, ok := fields.Get("id")
	require.True(t, ok)
	assert.Same(t, childID, got)
	assert.Equal(t, 1, fields.Len())
}

func TestFlatten_Idempotent(t *testing.T) {
	// Flattening the same type twice yields identical ordered maps
	base := domain.NewObject("Base",
		domain.NewField("a", domain.String()),
		domain.NewField("b", domain.String()),
	)
	derived := domain.Extend("Derived", base,
		domain.NewField("b", domain.Number()),
		domain.NewField("c", domain.Number()),
	)

	first, err := Flatten(derived)
	require.NoError(t, err)
	second, err := Flatten(derived)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		f1, _ := first.Get(name)
		f2, _ := second.Get(name)
		assert.Same(t, f1, f2)
	}
}

func TestFlatten_DeepChain(t *testing.T) {
	// A 10k-deep chain completes without recursion issues
	const depth = 10000

	var current *domain.ObjectType
	for i := 0; i < depth; i++ {
		current = domain.Extend(
			fmt.Sprintf("T%d", i),
			current,
			domain.NewField(fmt.Sprintf("f%d", i), domain.String()),
		)
	}

	fields, err := Flatten(current)
	require.NoError(t, err)
	assert.Equal(t, depth, fields.Len())
}

func TestFlatten_CycleFailsLoudly(t *testing.T) {
	// A cyclic chain is a contract violation, distinct from "no match"
	a := domain.NewObject("A", domain.NewField("x", domain.String()))
	b := domain.Extend("B", a)
	a.Base = b

	_, err := Flatten(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInheritanceCycle)
}

func TestFlattenInto_SeededAccumulator(t *testing.T) {
	// Entries already in the accumulator block later writes
	seeded := domain.NewFieldMap()
	pinned := domain.NewField("id", domain.Number())
	seeded.Add("id", pinned)

	obj := domain.NewObject("Widget",
		domain.NewField("id", domain.String()),
		domain.NewField("name", domain.String()),
	)

	fields, err := FlattenInto(obj, seeded)
	require.NoError(t, err)

	got, ok := fields.Get("id")
	require.True(t, ok)
	assert.Same(t, pinned, got)
	assert.Equal(t, []string{"id", "name"}, fields.Names())
}

func TestFlattenInto_NilAccumulator(t *testing.T) {
	fields, err := FlattenInto(domain.NewObject("Empty"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, fields.Len())
}
