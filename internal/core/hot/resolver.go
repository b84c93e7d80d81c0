package hot

import "strings"

// prefixDefaults maps a 3-character record-family prefix to the canonical
// layout used when a file omits the subtype suffix. The BKS family is
// deliberately absent: its subtypes share a prefix but not a layout, so
// they go through content heuristics instead.
var prefixDefaults = map[string]string{
	"BFH": "BFH01",
	"BCH": "BCH02",
	"BOH": "BOH03",
	"BKT": "BKT06",
	"BKI": "BKI63",
	"BAR": "BAR64",
	"BKP": "BKP84",
	"BOT": "BOT94",
	"BCT": "BCT95",
	"BFT": "BFT99",
}

// transactionCodes are the document transaction codes recognised by the
// BKS identification heuristic.
var transactionCodes = map[string]bool{
	"TKTT": true,
	"RFND": true,
	"EXCH": true,
	"CANX": true,
	"ADMA": true,
	"ACMA": true,
}

// knownTaxCodes is the small enumerated set of 2-letter tax codes the BKS
// tax heuristic sniffs for.
var knownTaxCodes = map[string]bool{
	"YQ": true, "YR": true, "XT": true, "XF": true, "AY": true,
	"ZP": true, "GB": true, "UB": true, "US": true, "FR": true,
	"DE": true, "JD": true, "OY": true, "QV": true, "RA": true,
}

// bksRule is one independent predicate→layout heuristic for ambiguous BKS
// records. Rules are evaluated in order; the first match wins.
type bksRule struct {
	name     string
	layoutID string
	applies  func(line string) bool
}

// bksHeuristics resolve BKS records whose subtype suffix is missing or
// unregistered, by sniffing content at fixed offsets. Best-effort only.
var bksHeuristics = []bksRule{
	{
		// A 3-letter currency token where BKS30 carries one.
		name:     "currency token",
		layoutID: "BKS30",
		applies: func(line string) bool {
			token := rawField(line, 54, 3)
			return len(token) == 3 && isAlphaUpper(token)
		},
	},
	{
		// A known tax code in the first tax triplet of BKS31.
		name:     "tax code token",
		layoutID: "BKS31",
		applies: func(line string) bool {
			return knownTaxCodes[rawField(line, 8, 2)]
		},
	},
	{
		// A transaction code, or a 10+ digit document number, where
		// BKS24 carries them.
		name:     "document identification",
		layoutID: "BKS24",
		applies: func(line string) bool {
			if transactionCodes[rawField(line, 19, 4)] {
				return true
			}
			doc := strings.TrimSpace(rawField(line, 6, 13))
			return len(doc) >= 10 && isDigits(doc)
		},
	},
}

// Resolver determines which registered layout applies to a raw record.
type Resolver struct {
	reg *Registry
}

// NewResolver returns a resolver backed by the given layout registry.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve picks the layout for a raw line: exact 5-character match first,
// then the family prefix map, then BKS content heuristics. The second
// return is false when nothing matches; resolution never fails harder than
// that, the caller records a warning and skips the record.
func (r *Resolver) Resolve(line string) (*RecordLayout, bool) {
	if len(line) < 5 {
		return nil, false
	}

	id := line[:5]
	if layout, ok := r.reg.Layout(id); ok {
		return layout, true
	}

	prefix := id[:3]
	if canonical, ok := prefixDefaults[prefix]; ok {
		return r.reg.Layout(canonical)
	}

	if prefix == "BKS" {
		for _, rule := range bksHeuristics {
			if rule.applies(line) {
				return r.reg.Layout(rule.layoutID)
			}
		}
	}

	return nil, false
}

func isAlphaUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
