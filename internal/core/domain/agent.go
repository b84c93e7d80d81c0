package domain

// Agent represents the travel agency / issuing office a block of documents
// belongs to, identified by its IATA number.
type Agent struct {
	IATANumber string `json:"iataNumber"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Country    string `json:"country"`

	Documents []Document `json:"documents"`

	// Authoritative from BOT94 when present, otherwise summed from Documents.
	Totals SettlementTotals `json:"totals"`
}
