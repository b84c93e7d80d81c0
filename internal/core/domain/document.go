package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCode identifies the kind of settlement transaction a document
// records (ticket issue, refund, exchange, agency debit/credit memo...).
type TransactionCode string

const (
	TxnTicket         TransactionCode = "TKTT"
	TxnRefund         TransactionCode = "RFND"
	TxnExchange       TransactionCode = "EXCH"
	TxnCancellation   TransactionCode = "CANX"
	TxnAgencyDebit    TransactionCode = "ADMA"
	TxnAgencyCredit   TransactionCode = "ACMA"
	TxnElectronicMisc TransactionCode = "EMDS"
)

// TaxDetail is one entry of a document's tax breakdown.
type TaxDetail struct {
	Country string          `json:"country"`
	Code    string          `json:"code"`
	Amount  decimal.Decimal `json:"amount"`
}

// ItinerarySegment is one flown or flyable coupon of a document's itinerary.
type ItinerarySegment struct {
	Coupon            string     `json:"coupon"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	Carrier           string     `json:"carrier"`
	FlightNumber      string     `json:"flightNumber"`
	BookingClass      string     `json:"bookingClass"`
	FlightDate        *time.Time `json:"flightDate,omitempty"`
	DepartureTime     string     `json:"departureTime"`
	ArrivalTime       string     `json:"arrivalTime"`
	FareBasis         string     `json:"fareBasis"`
	StopoverIndicator string     `json:"stopoverIndicator"`
}

// Document is a single ticket, refund or exchange transaction together with
// its passenger, monetary, itinerary, tax and payment detail. A document
// belongs to exactly one Agent and is complete only once it carries a
// non-empty document number.
type Document struct {
	DocumentNumber  string          `json:"documentNumber"`
	TransactionCode TransactionCode `json:"transactionCode"`
	FormCode        string          `json:"formCode"`
	IssueDate       *time.Time      `json:"issueDate,omitempty"`
	DomIntIndicator string          `json:"domIntIndicator"`

	// Refund / exchange linkage
	ConjunctionTicket      string     `json:"conjunctionTicket"`
	OriginalDocumentNumber string     `json:"originalDocumentNumber"`
	OriginalIssueDate      *time.Time `json:"originalIssueDate,omitempty"`

	// Passenger
	PassengerName string `json:"passengerName"`
	PassengerType string `json:"passengerType"` // ADT, CHD, INF...

	// Monetary fields, at the currency's implied decimal scale
	FareAmount       decimal.Decimal `json:"fareAmount"`
	EquivFareAmount  decimal.Decimal `json:"equivFareAmount"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	PenaltyAmount    decimal.Decimal `json:"penaltyAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CommissionRate   decimal.Decimal `json:"commissionRate"` // percentage
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	NetRemittance    decimal.Decimal `json:"netRemittance"`

	// Payment
	FOPType      string `json:"fopType"` // CA, CC, MS...
	CardType     string `json:"cardType"`
	CardNumber   string `json:"cardNumber"` // usually masked
	ApprovalCode string `json:"approvalCode"`

	// Itinerary
	OriginCity      string             `json:"originCity"`
	DestinationCity string             `json:"destinationCity"`
	Itinerary       []ItinerarySegment `json:"itinerary"`

	Taxes []TaxDetail `json:"taxes"`
}
