package hot

// OrphanPolicy decides what happens to a document whose identification
// record arrives before any office header has opened an agent.
type OrphanPolicy string

const (
	// OrphanBuffer accumulates the document and attaches it to the next
	// agent that appears; if no agent ever appears it is dropped at end
	// of input with a warning. This is the default.
	OrphanBuffer OrphanPolicy = "buffer"
	// OrphanDrop discards the document immediately with a warning.
	OrphanDrop OrphanPolicy = "drop"
)

// Options tune a parsing pass. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Revision selects the layout table. Unknown revisions fall back to
	// Revision23.
	Revision Revision
	// OrphanPolicy handles documents that start before any agent exists.
	OrphanPolicy OrphanPolicy
	// YearPivot expands two-digit years: below the pivot lands in the
	// 2000s, at or above it in the 1900s.
	YearPivot int
	// AmountScale is the implied decimal scale of signed numeric fields.
	AmountScale int32
	// KeepRawRecords retains every accepted raw line on the ParsedFile
	// for debugging.
	KeepRawRecords bool
}

// DefaultOptions returns the documented defaults: revision 23 layouts,
// orphan buffering, year pivot 50, two implied decimals.
func DefaultOptions() Options {
	return Options{
		Revision:     Revision23,
		OrphanPolicy: OrphanBuffer,
		YearPivot:    50,
		AmountScale:  2,
	}
}

func (o Options) withDefaults() Options {
	if o.Revision == "" {
		o.Revision = Revision23
	}
	if o.OrphanPolicy != OrphanDrop {
		o.OrphanPolicy = OrphanBuffer
	}
	if o.YearPivot <= 0 || o.YearPivot > 100 {
		o.YearPivot = 50
	}
	if o.AmountScale <= 0 {
		o.AmountScale = 2
	}
	return o
}
