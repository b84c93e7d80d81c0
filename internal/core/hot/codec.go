// Package hot decodes IATA BSP Hand-Off Transmission (HOT) settlement files:
// fixed-width 136-byte records folded into a hierarchical model of agents,
// documents, itinerary segments, taxes and payments.
package hot

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// IATA overpunch sign convention: the last character of a signed numeric
// field encodes both the final digit and the sign of the whole value.
var (
	overpunchPositive = map[byte]byte{
		'{': '0', 'A': '1', 'B': '2', 'C': '3', 'D': '4',
		'E': '5', 'F': '6', 'G': '7', 'H': '8', 'I': '9',
	}
	overpunchNegative = map[byte]byte{
		'}': '0', 'J': '1', 'K': '2', 'L': '3', 'M': '4',
		'N': '5', 'O': '6', 'P': '7', 'Q': '8', 'R': '9',
	}
)

// DecodeText extracts the 1-indexed byte range [start, start+length) from
// line, converts it from the wire charset and trims surrounding whitespace.
// Ranges beyond the end of the line resolve to the available suffix, or ""
// when the line is shorter than start.
func DecodeText(line string, start, length int) string {
	return strings.TrimSpace(decodeWireText(rawField(line, start, length)))
}

// decodeWireText converts one extracted field from the single-byte IATA
// wire charset (ISO 8859-1) to UTF-8. Conversion happens after extraction:
// field offsets and record windowing count wire bytes, and a high byte in
// one field must not shift the fields behind it. Every byte maps, so
// undecodable input cannot fail a parse.
func decodeWireText(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
			if err != nil {
				return s
			}
			return decoded
		}
	}
	return s
}

// DecodeNumber extracts the range and parses it as an unsigned integer,
// ignoring every non-digit byte. An empty or digit-free field yields zero.
func DecodeNumber(line string, start, length int) int64 {
	var n int64
	seen := false
	for _, c := range []byte(rawField(line, start, length)) {
		if c < '0' || c > '9' {
			continue
		}
		n = n*10 + int64(c-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}

// DecodeSignedNumber extracts the range and parses it as a signed
// fixed-point amount with the given implied decimal scale. The sign comes
// from the IATA overpunch character in the last position, or from a plain
// trailing '+'/'-'. Malformed input yields exact zero, never an error.
func DecodeSignedNumber(line string, start, length int, scale int32) decimal.Decimal {
	value := strings.TrimSpace(rawField(line, start, length))
	if value == "" {
		return decimal.Zero
	}

	negative := false
	last := value[len(value)-1]
	if digit, ok := overpunchPositive[last]; ok {
		value = value[:len(value)-1] + string(digit)
	} else if digit, ok := overpunchNegative[last]; ok {
		value = value[:len(value)-1] + string(digit)
		negative = true
	} else if last == '-' {
		value = value[:len(value)-1]
		negative = true
	} else if last == '+' {
		value = value[:len(value)-1]
	}

	digits := make([]byte, 0, len(value))
	for _, c := range []byte(value) {
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(string(digits))
	if err != nil {
		return decimal.Zero
	}
	amount = amount.Shift(-scale)
	if negative {
		amount = amount.Neg()
	}
	return amount
}

// DecodeDate extracts a 6-digit date field and interprets it per ParseDate.
func DecodeDate(line string, start, length, yearPivot int) *time.Time {
	return ParseDate(DecodeText(line, start, length), yearPivot)
}

// ParseDate interprets a 6-digit date, trying DDMMYY first and YYMMDD as a
// fallback. Two-digit years expand through yearPivot: years below the pivot
// land in the 2000s, the rest in the 1900s. Returns nil for anything that is
// not exactly six digits, or for an all-zero field.
func ParseDate(value string, yearPivot int) *time.Time {
	value = strings.TrimSpace(value)
	if len(value) != 6 {
		return nil
	}
	allZero := true
	for _, c := range []byte(value) {
		if c < '0' || c > '9' {
			return nil
		}
		if c != '0' {
			allZero = false
		}
	}
	if allZero {
		return nil
	}

	a := twoDigits(value[0:2])
	b := twoDigits(value[2:4])
	c := twoDigits(value[4:6])

	// DDMMYY first, then YYMMDD.
	if d := makeDate(c, b, a, yearPivot); d != nil {
		return d
	}
	return makeDate(a, b, c, yearPivot)
}

func makeDate(year, month, day, yearPivot int) *time.Time {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	if year < yearPivot {
		year += 2000
	} else {
		year += 1900
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// rawField returns the untrimmed 1-indexed range, clipped to the line.
func rawField(line string, start, length int) string {
	if start < 1 || length < 1 {
		return ""
	}
	from := start - 1
	if from >= len(line) {
		return ""
	}
	to := from + length
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}
