package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
)

// maxReportDiagnostics bounds the warnings/errors shown in the text
// report. The model itself keeps all of them.
const maxReportDiagnostics = 20

// ExportService renders a parsed file into CSV and plain-text reports.
// Pure formatting: no parsing logic lives here.
type ExportService struct {
	now func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

var csvHeader = []string{
	"Agent IATA", "Agent Name", "Agent City",
	"Document Number", "Transaction Type", "Issue Date",
	"Passenger Name", "Passenger Type",
	"Origin", "Destination", "Routing",
	"Fare", "Tax", "Penalty", "Total",
	"Commission Rate", "Commission Amount", "Net Remittance",
	"FOP Type", "Card Type", "Card Number",
}

// RenderCSV writes one row per document, flattened with its owning
// agent's identity.
func (s *ExportService) RenderCSV(ctx context.Context, file *domain.ParsedFile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, agent := range file.Agents {
		for _, doc := range agent.Documents {
			row := []string{
				agent.IATANumber, agent.Name, agent.City,
				doc.DocumentNumber, string(doc.TransactionCode), formatDate(doc.IssueDate),
				doc.PassengerName, doc.PassengerType,
				doc.OriginCity, doc.DestinationCity, routing(&doc),
				doc.FareAmount.String(), doc.TaxAmount.String(),
				doc.PenaltyAmount.String(), doc.TotalAmount.String(),
				doc.CommissionRate.String(), doc.CommissionAmount.String(),
				doc.NetRemittance.String(),
				doc.FOPType, doc.CardType, doc.CardNumber,
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write CSV row for document %s: %w", doc.DocumentNumber, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReport produces the human-readable analysis report.
func (s *ExportService) RenderReport(ctx context.Context, file *domain.ParsedFile, filename string) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thinRule := strings.Repeat("-", 40)
	cur := file.CurrencyCode

	fmt.Fprintf(&b, "%s\nIATA HOT/LIFT FILE ANALYSIS REPORT\n%s\n\n", rule, rule)

	fmt.Fprintf(&b, "FILE INFORMATION\n%s\n", thinRule)
	fmt.Fprintf(&b, "  Filename:        %s\n", filename)
	fmt.Fprintf(&b, "  BSP Code:        %s\n", file.BSPCode)
	fmt.Fprintf(&b, "  Airline Code:    %s\n", file.AirlineCode)
	fmt.Fprintf(&b, "  File Date:       %s\n", formatDate(file.FileDate))
	fmt.Fprintf(&b, "  Billing Period:  %s\n", file.BillingPeriod)
	fmt.Fprintf(&b, "  Currency:        %s\n", cur)
	fmt.Fprintf(&b, "  DISH Version:    %s\n", file.DISHVersion)
	fmt.Fprintf(&b, "  File Type:       %s\n\n", file.FileType)

	fmt.Fprintf(&b, "FILE TOTALS\n%s\n", thinRule)
	fmt.Fprintf(&b, "  Total Documents: %d\n", file.Totals.DocumentCount)
	fmt.Fprintf(&b, "  Total Fare:      %s %s\n", cur, file.Totals.Fare.StringFixed(2))
	fmt.Fprintf(&b, "  Total Tax:       %s %s\n", cur, file.Totals.Tax.StringFixed(2))
	fmt.Fprintf(&b, "  Total Amount:    %s %s\n", cur, file.Totals.Amount.StringFixed(2))
	fmt.Fprintf(&b, "  Net Remittance:  %s %s\n\n", cur, file.Totals.NetRemit.StringFixed(2))

	fmt.Fprintf(&b, "%s\nAGENT DETAILS\n%s\n", rule, rule)
	for i, agent := range file.Agents {
		fmt.Fprintf(&b, "\nAGENT %d: %s\n%s\n", i+1, agent.IATANumber, strings.Repeat("-", 60))
		fmt.Fprintf(&b, "  Name:      %s\n", agent.Name)
		fmt.Fprintf(&b, "  City:      %s\n", agent.City)
		fmt.Fprintf(&b, "  Country:   %s\n", agent.Country)
		fmt.Fprintf(&b, "  Documents: %d\n", len(agent.Documents))
		fmt.Fprintf(&b, "  Fare:      %s %s\n", cur, agent.Totals.Fare.StringFixed(2))
		fmt.Fprintf(&b, "  Tax:       %s %s\n", cur, agent.Totals.Tax.StringFixed(2))
		fmt.Fprintf(&b, "  Total:     %s %s\n", cur, agent.Totals.Amount.StringFixed(2))
		fmt.Fprintf(&b, "  Net Remit: %s %s\n\n", cur, agent.Totals.NetRemit.StringFixed(2))

		if len(agent.Documents) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  DOCUMENTS:\n  %s\n", strings.Repeat("-", 56))
		for _, doc := range agent.Documents {
			fmt.Fprintf(&b, "    Doc: %s  Type: %s\n", doc.DocumentNumber, doc.TransactionCode)
			fmt.Fprintf(&b, "    Passenger: %s\n", doc.PassengerName)
			fmt.Fprintf(&b, "    Issue Date: %s  Routing: %s\n", formatDate(doc.IssueDate), routing(&doc))
			fmt.Fprintf(&b, "    Fare: %s  Tax: %s  Total: %s\n",
				doc.FareAmount.StringFixed(2), doc.TaxAmount.StringFixed(2), doc.TotalAmount.StringFixed(2))
			if !doc.CommissionAmount.IsZero() {
				fmt.Fprintf(&b, "    Commission: %s%%  Amount: %s  Net: %s\n",
					doc.CommissionRate.String(), doc.CommissionAmount.StringFixed(2), doc.NetRemittance.StringFixed(2))
			}
			if doc.FOPType != "" {
				payment := fmt.Sprintf("    Payment: %s", fopDescription(doc.FOPType))
				if doc.CardType != "" {
					payment += fmt.Sprintf(" (%s)", doc.CardType)
				}
				if doc.CardNumber != "" {
					payment += " " + doc.CardNumber
				}
				b.WriteString(payment + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(file.Warnings) > 0 || len(file.Errors) > 0 {
		fmt.Fprintf(&b, "%s\nPARSING NOTES\n%s\n", rule, rule)
		if len(file.Warnings) > 0 {
			b.WriteString("\nWarnings:\n")
			for _, w := range truncate(file.Warnings, maxReportDiagnostics) {
				fmt.Fprintf(&b, "  - %s\n", w)
			}
		}
		if len(file.Errors) > 0 {
			b.WriteString("\nErrors:\n")
			for _, e := range truncate(file.Errors, maxReportDiagnostics) {
				fmt.Fprintf(&b, "  - %s\n", e)
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\nReport generated: %s\n%s\n", rule, s.now().Format("2006-01-02 15:04:05"), rule)
	return b.String()
}

// routing builds the city chain for a document: origin city followed by
// each segment destination, falling back to the BKI61 pair.
func routing(doc *domain.Document) string {
	route := doc.OriginCity
	for _, seg := range doc.Itinerary {
		if seg.Destination != "" {
			route += "-" + seg.Destination
		}
	}
	if route == "" && doc.DestinationCity != "" {
		route = doc.OriginCity + "-" + doc.DestinationCity
	}
	return route
}

func fopDescription(fopType string) string {
	switch fopType {
	case "CA":
		return "Cash"
	case "CC":
		return "Credit Card"
	case "CK":
		return "Check"
	case "MS":
		return "Misc"
	case "IN":
		return "Invoice"
	}
	return fopType
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(entries []string, limit int) []string {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
