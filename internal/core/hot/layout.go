package hot

import "fmt"

// RecordLength is the fixed width of every HOT record in bytes.
const RecordLength = 136

// FieldKind selects the codec used to decode a field's byte range.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindSigned
)

// FieldDescriptor places one named field inside a 136-byte record.
// Start is the 1-indexed byte offset from the DISH specification.
type FieldDescriptor struct {
	Name   string
	Start  int
	Length int
	Kind   FieldKind
}

// RecordLayout is the ordered field list for one 5-character record type.
// Byte ranges not covered by any field are filler.
type RecordLayout struct {
	ID     string
	Fields []FieldDescriptor
}

// Validate checks that the layout's ranges stay inside the record and do
// not overlap. The byte-offset tables are the most error-prone artifact of
// this format, so every registered layout is validated by tests.
func (l *RecordLayout) Validate() error {
	var covered [RecordLength + 1]bool
	for _, f := range l.Fields {
		if f.Start < 1 || f.Length < 1 {
			return fmt.Errorf("layout %s field %s: invalid range (start %d, length %d)", l.ID, f.Name, f.Start, f.Length)
		}
		if f.Start+f.Length-1 > RecordLength {
			return fmt.Errorf("layout %s field %s: extends past byte %d", l.ID, f.Name, RecordLength)
		}
		for i := f.Start; i < f.Start+f.Length; i++ {
			if covered[i] {
				return fmt.Errorf("layout %s field %s: overlaps another field at byte %d", l.ID, f.Name, i)
			}
			covered[i] = true
		}
	}
	return nil
}

// Revision names one supported DISH layout-table revision.
type Revision string

// Revision23 is the DISH revision 23 table, the default and currently the
// only one shipped. The registry is keyed by revision so that a spec
// correction lands in exactly one table.
const Revision23 Revision = "23"

// Registry maps 5-character record-type identifiers to their layouts for
// one DISH revision. It is static data and owns no runtime state.
type Registry struct {
	revision Revision
	layouts  map[string]*RecordLayout
}

var revisionTables = map[Revision][]RecordLayout{
	Revision23: rev23Layouts,
}

// NewRegistry returns the layout registry for the given revision, falling
// back to Revision23 when the revision is unknown.
func NewRegistry(rev Revision) *Registry {
	table, ok := revisionTables[rev]
	if !ok {
		rev = Revision23
		table = revisionTables[Revision23]
	}
	layouts := make(map[string]*RecordLayout, len(table))
	for i := range table {
		layouts[table[i].ID] = &table[i]
	}
	return &Registry{revision: rev, layouts: layouts}
}

// Revision reports which revision table this registry serves.
func (r *Registry) Revision() Revision {
	return r.revision
}

// Layout returns the layout registered for the exact 5-character identifier.
func (r *Registry) Layout(id string) (*RecordLayout, bool) {
	l, ok := r.layouts[id]
	return l, ok
}

// IDs returns every registered record-type identifier.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.layouts))
	for id := range r.layouts {
		ids = append(ids, id)
	}
	return ids
}
