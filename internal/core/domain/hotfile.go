package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FileType distinguishes the two settlement file flavours BSP hands off.
type FileType string

const (
	FileTypeHOT  FileType = "HOT"
	FileTypeLIFT FileType = "LIFT"
)

// SettlementTotals aggregates monetary totals at one scope (office or file).
type SettlementTotals struct {
	DocumentCount int             `json:"documentCount"`
	Fare          decimal.Decimal `json:"fare"`
	Tax           decimal.Decimal `json:"tax"`
	Amount        decimal.Decimal `json:"amount"`
	NetRemit      decimal.Decimal `json:"netRemit"`
}

// ParsedFile is the root aggregate produced by a single parsing pass over a
// HOT/LIFT file. It is immutable once the pass completes.
type ParsedFile struct {
	// File metadata (BFH01 / BCH02)
	BSPCode       string     `json:"bspCode"`
	FileDate      *time.Time `json:"fileDate,omitempty"`
	BillingPeriod string     `json:"billingPeriod"`
	AirlineCode   string     `json:"airlineCode"`
	AirlineName   string     `json:"airlineName"`
	CurrencyCode  string     `json:"currencyCode"`
	DISHVersion   string     `json:"dishVersion"`
	FileType      FileType   `json:"fileType"`

	Agents []Agent `json:"agents"`

	// Authoritative from BFT99 when present, otherwise summed from Agents.
	Totals SettlementTotals `json:"totals"`

	// Diagnostics, in input line order.
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`

	// RawRecords is populated only when the parser is asked to keep the
	// original lines for debugging.
	RawRecords []string `json:"rawRecords,omitempty"`
}
