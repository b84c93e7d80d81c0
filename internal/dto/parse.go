package dto

import (
	"time"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalsResponse defines the monetary totals returned at document-count,
// office and file scope. Decimals marshal as strings.
type TotalsResponse struct {
	Documents int             `json:"documents"`
	Fare      decimal.Decimal `json:"fare"`
	Tax       decimal.Decimal `json:"tax"`
	Amount    decimal.Decimal `json:"amount"`
	NetRemit  decimal.Decimal `json:"netRemit"`
}

// TaxResponse defines one tax breakdown entry of a document.
type TaxResponse struct {
	Country string          `json:"country"`
	Code    string          `json:"code"`
	Amount  decimal.Decimal `json:"amount"`
}

// SegmentResponse defines one itinerary segment of a document.
type SegmentResponse struct {
	Coupon        string `json:"coupon,omitempty"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Carrier       string `json:"carrier"`
	FlightNumber  string `json:"flightNumber"`
	FlightDate    string `json:"flightDate,omitempty"`
	BookingClass  string `json:"bookingClass"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	FareBasis     string `json:"fareBasis"`
}

// PaymentResponse defines the form-of-payment detail of a document.
type PaymentResponse struct {
	FOPType      string `json:"fopType"`
	CardType     string `json:"cardType"`
	CardNumber   string `json:"cardNumber"`
	ApprovalCode string `json:"approvalCode"`
}

// DocumentResponse defines the data returned for one ticket/transaction.
type DocumentResponse struct {
	DocumentNumber    string            `json:"documentNumber"`
	TransactionCode   string            `json:"transactionCode"`
	FormCode          string            `json:"formCode,omitempty"`
	IssueDate         string            `json:"issueDate,omitempty"`
	DomIntIndicator   string            `json:"domIntIndicator,omitempty"`
	PassengerName     string            `json:"passengerName"`
	PassengerType     string            `json:"passengerType"`
	Fare              decimal.Decimal   `json:"fare"`
	EquivFare         decimal.Decimal   `json:"equivFare"`
	Tax               decimal.Decimal   `json:"tax"`
	Penalty           decimal.Decimal   `json:"penalty"`
	Total             decimal.Decimal   `json:"total"`
	CommissionRate    decimal.Decimal   `json:"commissionRate"`
	Commission        decimal.Decimal   `json:"commission"`
	NetRemittance     decimal.Decimal   `json:"netRemittance"`
	Origin            string            `json:"origin"`
	Destination       string            `json:"destination"`
	Itinerary         []SegmentResponse `json:"itinerary"`
	Taxes             []TaxResponse     `json:"taxes"`
	Payment           PaymentResponse   `json:"payment"`
	ConjunctionTicket string            `json:"conjunctionTicket,omitempty"`
	OriginalDocument  string            `json:"originalDocument,omitempty"`
	OriginalIssueDate string            `json:"originalIssueDate,omitempty"`
}

// AgentResponse defines the data returned for one agent/office.
type AgentResponse struct {
	IATANumber string             `json:"iataNumber"`
	Name       string             `json:"name"`
	City       string             `json:"city"`
	Country    string             `json:"country"`
	Totals     TotalsResponse     `json:"totals"`
	Documents  []DocumentResponse `json:"documents"`
}

// ParseHOTResponse defines the full JSON projection of a parsed file.
type ParseHOTResponse struct {
	Filename      string          `json:"filename,omitempty"`
	BSPCode       string          `json:"bspCode"`
	FileDate      string          `json:"fileDate,omitempty"`
	BillingPeriod string          `json:"billingPeriod"`
	AirlineCode   string          `json:"airlineCode"`
	AirlineName   string          `json:"airlineName"`
	CurrencyCode  string          `json:"currencyCode"`
	DISHVersion   string          `json:"dishVersion"`
	FileType      string          `json:"fileType"`
	Totals        TotalsResponse  `json:"totals"`
	Agents        []AgentResponse `json:"agents"`
	Warnings      []string        `json:"warnings"`
	Errors        []string        `json:"errors"`
}

// ToParseHOTResponse converts a domain.ParsedFile to its JSON projection.
func ToParseHOTResponse(f *domain.ParsedFile, filename string) ParseHOTResponse {
	agents := make([]AgentResponse, len(f.Agents))
	for i := range f.Agents {
		agents[i] = toAgentResponse(&f.Agents[i])
	}
	return ParseHOTResponse{
		Filename:      filename,
		BSPCode:       f.BSPCode,
		FileDate:      isoDate(f.FileDate),
		BillingPeriod: f.BillingPeriod,
		AirlineCode:   f.AirlineCode,
		AirlineName:   f.AirlineName,
		CurrencyCode:  f.CurrencyCode,
		DISHVersion:   f.DISHVersion,
		FileType:      string(f.FileType),
		Totals:        toTotalsResponse(f.Totals),
		Agents:        agents,
		Warnings:      f.Warnings,
		Errors:        f.Errors,
	}
}

func toAgentResponse(a *domain.Agent) AgentResponse {
	docs := make([]DocumentResponse, len(a.Documents))
	for i := range a.Documents {
		docs[i] = toDocumentResponse(&a.Documents[i])
	}
	return AgentResponse{
		IATANumber: a.IATANumber,
		Name:       a.Name,
		City:       a.City,
		Country:    a.Country,
		Totals:     toTotalsResponse(a.Totals),
		Documents:  docs,
	}
}

func toDocumentResponse(d *domain.Document) DocumentResponse {
	segments := make([]SegmentResponse, len(d.Itinerary))
	for i, seg := range d.Itinerary {
		segments[i] = SegmentResponse{
			Coupon:        seg.Coupon,
			Origin:        seg.Origin,
			Destination:   seg.Destination,
			Carrier:       seg.Carrier,
			FlightNumber:  seg.FlightNumber,
			FlightDate:    isoDate(seg.FlightDate),
			BookingClass:  seg.BookingClass,
			DepartureTime: seg.DepartureTime,
			ArrivalTime:   seg.ArrivalTime,
			FareBasis:     seg.FareBasis,
		}
	}

	taxes := make([]TaxResponse, len(d.Taxes))
	for i, tax := range d.Taxes {
		taxes[i] = TaxResponse{Country: tax.Country, Code: tax.Code, Amount: tax.Amount}
	}

	return DocumentResponse{
		DocumentNumber:  d.DocumentNumber,
		TransactionCode: string(d.TransactionCode),
		FormCode:        d.FormCode,
		IssueDate:       isoDate(d.IssueDate),
		DomIntIndicator: d.DomIntIndicator,
		PassengerName:   d.PassengerName,
		PassengerType:   d.PassengerType,
		Fare:            d.FareAmount,
		EquivFare:       d.EquivFareAmount,
		Tax:             d.TaxAmount,
		Penalty:         d.PenaltyAmount,
		Total:           d.TotalAmount,
		CommissionRate:  d.CommissionRate,
		Commission:      d.CommissionAmount,
		NetRemittance:   d.NetRemittance,
		Origin:          d.OriginCity,
		Destination:     d.DestinationCity,
		Itinerary:       segments,
		Taxes:           taxes,
		Payment: PaymentResponse{
			FOPType:      d.FOPType,
			CardType:     d.CardType,
			CardNumber:   d.CardNumber,
			ApprovalCode: d.ApprovalCode,
		},
		ConjunctionTicket: d.ConjunctionTicket,
		OriginalDocument:  d.OriginalDocumentNumber,
		OriginalIssueDate: isoDate(d.OriginalIssueDate),
	}
}

func toTotalsResponse(t domain.SettlementTotals) TotalsResponse {
	return TotalsResponse{
		Documents: t.DocumentCount,
		Fare:      t.Fare,
		Tax:       t.Tax,
		Amount:    t.Amount,
		NetRemit:  t.NetRemit,
	}
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
