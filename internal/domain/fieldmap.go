package domain

// FieldMap is an insertion-ordered mapping of field name to field. It backs
// both the declared-field set of an object type and the accumulator used
// while flattening an inheritance chain.
type FieldMap struct {
	names  []string
	fields map[string]*Field
}

// NewFieldMap creates an empty field map.
func NewFieldMap() *FieldMap {
	return &FieldMap{fields: make(map[string]*Field)}
}

// Set inserts or replaces the field under name, keeping the original
// insertion position on replace.
func (m *FieldMap) Set(name string, f *Field) {
	if _, ok := m.fields[name]; !ok {
		m.names = append(m.names, name)
	}
	m.fields[name] = f
}

// Add inserts the field only when the name is not present yet and reports
// whether it was inserted. Flattening relies on this first-write-wins
// behavior so the most-derived declaration survives.
func (m *FieldMap) Add(name string, f *Field) bool {
	if _, ok := m.fields[name]; ok {
		return false
	}
	m.names = append(m.names, name)
	m.fields[name] = f
	return true
}

// Get returns the field under name, if any.
func (m *FieldMap) Get(name string) (*Field, bool) {
	f, ok := m.fields[name]
	return f, ok
}

// Has reports whether a field with the given name exists.
func (m *FieldMap) Has(name string) bool {
	_, ok := m.fields[name]
	return ok
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	return len(m.names)
}

// Names returns the field names in insertion order. The returned slice is a
// copy and safe to mutate.
func (m *FieldMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Range calls handle for every field in insertion order until handle returns
// false.
func (m *FieldMap) Range(handle func(name string, f *Field) bool) {
	for _, name := range m.names {
		if !handle(name, m.fields[name]) {
			return
		}
	}
}

// First returns the first field in insertion order satisfying pred.
func (m *FieldMap) First(pred func(*Field) bool) (*Field, bool) {
	for _, name := range m.names {
		if f := m.fields[name]; pred(f) {
			return f, true
		}
	}
	return nil, false
}
