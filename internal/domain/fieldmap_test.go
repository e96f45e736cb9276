package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap_SetKeepsInsertionOrder(t *testing.T) {
	// Names come back in the order fields were first inserted
	m := NewFieldMap()
	m.Set("id", NewField("id", String()))
	m.Set("name", NewField("name", String()))
	m.Set("weight", NewField("weight", Number()))

	assert.Equal(t, []string{"id", "name", "weight"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestFieldMap_SetReplaceKeepsPosition(t *testing.T) {
	// Replacing a field must not move it to the end
	m := NewFieldMap()
	m.Set("id", NewField("id", String()))
	m.Set("name", NewField("name", String()))

	replacement := NewField("id", Number())
	m.Set("id", replacement)

	assert.Equal(t, []string{"id", "name"}, m.Names())
	got, ok := m.Get("id")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestFieldMap_AddIsFirstWriteWins(t *testing.T) {
	// Add refuses to overwrite an existing entry
	m := NewFieldMap()
	first := NewField("id", String())
	second := NewField("id", Number())

	assert.True(t, m.Add("id", first))
	assert.False(t, m.Add("id", second))

	got, ok := m.Get("id")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestFieldMap_RangeStopsEarly(t *testing.T) {
	// Range stops when the handler returns false
	m := NewFieldMap()
	m.Set("a", NewField("a", String()))
	m.Set("b", NewField("b", String()))
	m.Set("c", NewField("c", String()))

	var seen []string
	m.Range(func(name string, _ *Field) bool {
		seen = append(seen, name)
		return name != "b"
	})

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestFieldMap_FirstMatchesInsertionOrder(t *testing.T) {
	// First returns the earliest inserted field satisfying the predicate
	m := NewFieldMap()
	m.Set("code", NewField("code", String()))
	m.Set("status", &Field{Name: "status", Type: NumberLiteral(200), IsStatusCode: true})
	m.Set("other", &Field{Name: "other", Type: NumberLiteral(204), IsStatusCode: true})

	f, ok := m.First(func(f *Field) bool { return f.IsStatusCode })
	require.True(t, ok)
	assert.Equal(t, "status", f.Name)
}

func TestFieldMap_FirstAbsent(t *testing.T) {
	// No match yields the explicit false, not a nil surprise
	m := NewFieldMap()
	m.Set("code", NewField("code", String()))

	f, ok := m.First(func(f *Field) bool { return f.IsStatusCode })
	assert.False(t, ok)
	assert.Nil(t, f)
}

func TestFieldMap_NamesReturnsCopy(t *testing.T) {
	// Mutating the returned names must not corrupt the map
	m := NewFieldMap()
	m.Set("a", NewField("a", String()))

	names := m.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, m.Names())
}
