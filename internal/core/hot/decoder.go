package hot

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldValue is one decoded field, typed by its descriptor's kind.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	Number int64
	Amount decimal.Decimal
}

// DecodedRecord is the flat name→value view of one raw record, tagged with
// the resolved type identifier. It is transient: the assembler consumes it
// immediately and it is not retained in the final model.
type DecodedRecord struct {
	TypeID string
	Raw    string
	Fields map[string]FieldValue
}

// Text returns the named field as trimmed text, or "" when absent.
func (r *DecodedRecord) Text(name string) string {
	return r.Fields[name].Text
}

// Number returns the named field as an unsigned integer, or 0 when absent.
func (r *DecodedRecord) Number(name string) int64 {
	return r.Fields[name].Number
}

// Amount returns the named field as a signed decimal, or zero when absent.
func (r *DecodedRecord) Amount(name string) decimal.Decimal {
	v, ok := r.Fields[name]
	if !ok {
		return decimal.Zero
	}
	return v.Amount
}

// Date interprets the named text field as a 6-digit date.
func (r *DecodedRecord) Date(name string, yearPivot int) *time.Time {
	return ParseDate(r.Text(name), yearPivot)
}

// Decoder applies a resolved layout to raw lines via the field codec.
type Decoder struct {
	scale int32
}

// NewDecoder returns a decoder producing amounts at the given implied
// decimal scale.
func NewDecoder(scale int32) *Decoder {
	return &Decoder{scale: scale}
}

// Decode right-pads line to the fixed record length and decodes every
// field of the layout. Out-of-range reads resolve to empty/zero, never to
// a failure.
func (d *Decoder) Decode(layout *RecordLayout, line string) *DecodedRecord {
	if len(line) < RecordLength {
		line += strings.Repeat(" ", RecordLength-len(line))
	}

	fields := make(map[string]FieldValue, len(layout.Fields))
	for _, f := range layout.Fields {
		v := FieldValue{Kind: f.Kind}
		switch f.Kind {
		case KindText:
			v.Text = DecodeText(line, f.Start, f.Length)
		case KindNumber:
			v.Number = DecodeNumber(line, f.Start, f.Length)
		case KindSigned:
			v.Amount = DecodeSignedNumber(line, f.Start, f.Length, d.scale)
		}
		fields[f.Name] = v
	}

	return &DecodedRecord{TypeID: layout.ID, Raw: line, Fields: fields}
}
