package mediainfo

import (
	"sort"
	"sync"
)

// Field describes one catalogued parameter: where it lives, how its value is
// typed and which view to request.
type Field struct {
	Stream StreamKind
	Name   string
	Type   ValueType
	Info   InfoKind
}

func (f Field) String() string {
	return f.Stream.String() + "/" + f.Name
}

// Value is the answer to a Field lookup. Raw is always filled; Int or Float
// is filled according to the field's type.
type Value struct {
	Field Field
	Raw   string
	Int   Optional[int64]
	Float Optional[float64]
}

// IsZero reports whether the engine returned nothing for the field.
func (v Value) IsZero() bool {
	return v.Raw == ""
}

// Lookup queries the streamIndex-th stream of f.Stream for f and types the
// answer according to f.Type. Parse failures follow the GetInt64 contract:
// absent value, one debug log record.
func (m *MediaInfo) Lookup(f Field, streamIndex int) (Value, error) {
	info := f.Info
	if !info.Valid() {
		info = InfoText
	}
	raw, err := m.GetInfo(f.Stream, streamIndex, f.Name, info)
	if err != nil {
		return Value{}, err
	}
	v := Value{Field: f, Raw: raw}
	if info != InfoText {
		return v, nil
	}
	switch f.Type {
	case ValueInteger:
		v.Int = m.parseInt64(raw, f.Stream, streamIndex, f.Name, 1)
	case ValueFloat:
		v.Float = m.parseFloat64(raw, f.Stream, streamIndex, f.Name, 1)
	}
	return v, nil
}

// LookupName is Lookup for a field resolved with FieldOf.
func (m *MediaInfo) LookupName(kind StreamKind, streamIndex int, name string) (Value, error) {
	return m.Lookup(FieldOf(kind, name), streamIndex)
}

type catalogTable struct {
	integer []string
	float   []string
	text    []string
}

type catalogIndex struct {
	byName map[StreamKind]map[string]Field
	sorted map[StreamKind][]Field
}

var (
	catalogOnce sync.Once
	catalog     catalogIndex
)

func loadCatalog() *catalogIndex {
	catalogOnce.Do(func() {
		catalog.byName = make(map[StreamKind]map[string]Field, len(catalogTables))
		catalog.sorted = make(map[StreamKind][]Field, len(catalogTables))
		for kind, table := range catalogTables {
			names := make(map[string]Field, len(table.integer)+len(table.float)+len(table.text))
			add := func(list []string, typ ValueType) {
				for _, name := range list {
					names[name] = Field{Stream: kind, Name: name, Type: typ, Info: InfoText}
				}
			}
			add(table.text, ValueText)
			add(table.float, ValueFloat)
			add(table.integer, ValueInteger)

			fields := make([]Field, 0, len(names))
			for _, f := range names {
				fields = append(fields, f)
			}
			sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

			catalog.byName[kind] = names
			catalog.sorted[kind] = fields
		}
	})
	return &catalog
}

// LookupField returns the catalogued field name of kind.
func LookupField(kind StreamKind, name string) (Field, bool) {
	f, ok := loadCatalog().byName[kind][name]
	return f, ok
}

// FieldOf returns the catalogued field, or a text field for names the
// catalog does not know.
func FieldOf(kind StreamKind, name string) Field {
	if f, ok := LookupField(kind, name); ok {
		return f
	}
	return Field{Stream: kind, Name: name, Type: ValueText, Info: InfoText}
}

// Fields returns every catalogued field of kind, sorted by name.
func Fields(kind StreamKind) []Field {
	src := loadCatalog().sorted[kind]
	out := make([]Field, len(src))
	copy(out, src)
	return out
}
