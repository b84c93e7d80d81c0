package hot

import (
	"fmt"
	"strings"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
)

// applyStatus classifies the outcome of applying one decoded record.
type applyStatus int

const (
	applyOK applyStatus = iota
	applySkipped
	applyFailed
)

// applyResult is the per-record outcome consumed by the parsing loop:
// skipped records surface as warnings, failed ones as errors, and the pass
// continues either way.
type applyResult struct {
	status applyStatus
	reason string
	err    error
}

func resultOK() applyResult {
	return applyResult{status: applyOK}
}

func resultSkipped(reason string) applyResult {
	return applyResult{status: applySkipped, reason: reason}
}

// assembler folds the flat record stream into the hierarchical model. It
// owns the "current agent" and "current document" cursors; a fresh
// assembler is created per parse invocation, there is no shared state.
type assembler struct {
	opts Options
	file *domain.ParsedFile

	agent *domain.Agent
	doc   *domain.Document

	// Documents that started before any agent existed (OrphanBuffer).
	orphans []domain.Document

	agentTotalsExplicit bool
	fileTotalsExplicit  bool
}

func newAssembler(opts Options) *assembler {
	return &assembler{
		opts: opts,
		file: &domain.ParsedFile{
			FileType: domain.FileTypeHOT,
			Agents:   []domain.Agent{},
			Warnings: []string{},
			Errors:   []string{},
		},
	}
}

// apply routes one decoded record to its family handler.
func (a *assembler) apply(rec *DecodedRecord) applyResult {
	switch rec.TypeID {
	case "BFH01":
		return a.applyFileHeader(rec)
	case "BCH02":
		return a.applyBillingHeader(rec)
	case "BOH03":
		return a.applyOfficeHeader(rec)
	case "BKT06":
		// Transaction grouping marker: informational only.
		return resultOK()
	case "BKS24":
		return a.applyDocumentIdentification(rec)
	case "BKS30":
		return a.applyDocumentAmounts(rec)
	case "BKS31":
		return a.applyTaxBreakdown(rec)
	case "BKS39":
		return a.applyCommission(rec)
	case "BKI61":
		return a.applyCityPair(rec)
	case "BKI63":
		return a.applyFlightSegment(rec)
	case "BAR64":
		return a.applyPassenger(rec)
	case "BAR66", "BKP84":
		return a.applyPayment(rec)
	case "BOT94":
		return a.applyOfficeTotals(rec)
	case "BCT95":
		// Billing analysis totals: informational only.
		return resultOK()
	case "BFT99":
		return a.applyFileTotals(rec)
	}
	return resultSkipped(fmt.Sprintf("no handler for record type '%s'", rec.TypeID))
}

func (a *assembler) applyFileHeader(rec *DecodedRecord) applyResult {
	a.file.BSPCode = rec.Text("bspCode")
	a.file.FileDate = rec.Date("fileDate", a.opts.YearPivot)
	a.file.BillingPeriod = rec.Text("billingPeriod")
	a.file.DISHVersion = rec.Text("dishVersion")

	switch rec.Text("fileTypeInd") {
	case "H":
		a.file.FileType = domain.FileTypeHOT
	case "L":
		a.file.FileType = domain.FileTypeLIFT
	}
	return resultOK()
}

func (a *assembler) applyBillingHeader(rec *DecodedRecord) applyResult {
	a.file.AirlineCode = rec.Text("airlineCode")
	a.file.CurrencyCode = rec.Text("currencyCode")
	if name := rec.Text("airlineName"); name != "" {
		a.file.AirlineName = name
	}

	if billingType := rec.Text("billingType"); billingType != "" {
		if billingType == "01" || billingType == "02" {
			a.file.FileType = domain.FileTypeHOT
		} else {
			a.file.FileType = domain.FileTypeLIFT
		}
	}
	return resultOK()
}

func (a *assembler) applyOfficeHeader(rec *DecodedRecord) applyResult {
	a.finalizeDocument()
	a.finalizeAgent()

	a.agent = &domain.Agent{
		IATANumber: rec.Text("iataNumber"),
		Name:       rec.Text("agentName"),
		City:       rec.Text("agentCity"),
		Country:    rec.Text("agentCountry"),
		Documents:  []domain.Document{},
	}

	// Buffered orphans attach to the first agent that appears.
	if len(a.orphans) > 0 {
		a.agent.Documents = append(a.agent.Documents, a.orphans...)
		a.orphans = nil
	}
	return resultOK()
}

func (a *assembler) applyDocumentIdentification(rec *DecodedRecord) applyResult {
	a.finalizeDocument()

	if a.agent == nil && a.opts.OrphanPolicy == OrphanDrop {
		return resultSkipped("document identification with no open agent; document dropped")
	}

	doc := &domain.Document{
		DocumentNumber:         rec.Text("documentNumber"),
		ConjunctionTicket:      rec.Text("conjunctionTicket"),
		OriginalDocumentNumber: rec.Text("originalDocumentNumber"),
		FormCode:               rec.Text("formCode"),
		DomIntIndicator:        rec.Text("domIntIndicator"),
		IssueDate:              rec.Date("issueDate", a.opts.YearPivot),
		OriginalIssueDate:      rec.Date("originalIssueDate", a.opts.YearPivot),
		Itinerary:              []domain.ItinerarySegment{},
		Taxes:                  []domain.TaxDetail{},
	}
	if code := rec.Text("transactionCode"); code != "" {
		doc.TransactionCode = domain.TransactionCode(strings.ToUpper(code))
	}
	a.doc = doc
	return resultOK()
}

func (a *assembler) applyDocumentAmounts(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("amounts record with no document in progress; data discarded")
	}
	a.doc.FareAmount = rec.Amount("fareAmount")
	a.doc.TaxAmount = rec.Amount("taxAmount")
	a.doc.PenaltyAmount = rec.Amount("penaltyAmount")
	a.doc.TotalAmount = rec.Amount("totalAmount")
	a.doc.EquivFareAmount = rec.Amount("equivFareAmount")
	return resultOK()
}

func (a *assembler) applyTaxBreakdown(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("tax breakdown record with no document in progress; data discarded")
	}
	for i := 1; i <= 9; i++ {
		tax := domain.TaxDetail{
			Country: rec.Text(fmt.Sprintf("taxCountry%d", i)),
			Code:    rec.Text(fmt.Sprintf("taxCode%d", i)),
			Amount:  rec.Amount(fmt.Sprintf("taxAmount%d", i)),
		}
		if tax.Country == "" && tax.Code == "" && tax.Amount.IsZero() {
			continue
		}
		a.doc.Taxes = append(a.doc.Taxes, tax)
	}
	return resultOK()
}

func (a *assembler) applyCommission(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("commission record with no document in progress; data discarded")
	}
	a.doc.CommissionRate = rec.Amount("commissionRate")
	a.doc.CommissionAmount = rec.Amount("commissionAmount")
	a.doc.NetRemittance = rec.Amount("netRemittance")
	return resultOK()
}

func (a *assembler) applyCityPair(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("city pair record with no document in progress; data discarded")
	}
	a.doc.OriginCity = rec.Text("originCity")
	a.doc.DestinationCity = rec.Text("destinationCity")
	return resultOK()
}

func (a *assembler) applyFlightSegment(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("itinerary record with no document in progress; data discarded")
	}
	seg := domain.ItinerarySegment{
		Coupon:            rec.Text("coupon"),
		Origin:            rec.Text("origin"),
		Destination:       rec.Text("destination"),
		Carrier:           rec.Text("carrier"),
		FlightNumber:      rec.Text("flightNumber"),
		BookingClass:      rec.Text("bookingClass"),
		FlightDate:        rec.Date("flightDate", a.opts.YearPivot),
		DepartureTime:     rec.Text("departureTime"),
		ArrivalTime:       rec.Text("arrivalTime"),
		FareBasis:         rec.Text("fareBasis"),
		StopoverIndicator: rec.Text("stopoverIndicator"),
	}
	if seg.Origin == "" && seg.Destination == "" {
		return resultSkipped("itinerary segment with no origin or destination; data discarded")
	}
	a.doc.Itinerary = append(a.doc.Itinerary, seg)
	return resultOK()
}

func (a *assembler) applyPassenger(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("passenger record with no document in progress; data discarded")
	}
	name := rec.Text("passengerName")

	// A BAR record resolved through the family fallback only contributes
	// a passenger name when it plausibly is one (SURNAME/FIRSTNAME form).
	if rec.Raw[:5] != "BAR64" {
		if strings.Contains(name, "/") {
			a.doc.PassengerName = name
		}
		return resultOK()
	}

	a.doc.PassengerName = name
	a.doc.PassengerType = rec.Text("passengerType")
	return resultOK()
}

func (a *assembler) applyPayment(rec *DecodedRecord) applyResult {
	if a.doc == nil {
		return resultSkipped("payment record with no document in progress; data discarded")
	}
	a.doc.FOPType = rec.Text("fopType")
	a.doc.CardType = rec.Text("cardType")
	if num := rec.Text("cardNumber"); num != "" {
		a.doc.CardNumber = num
	}
	a.doc.ApprovalCode = rec.Text("approvalCode")
	return resultOK()
}

func (a *assembler) applyOfficeTotals(rec *DecodedRecord) applyResult {
	a.finalizeDocument()

	if a.agent == nil {
		return resultSkipped("office totals record with no open agent; data discarded")
	}
	a.agent.Totals = domain.SettlementTotals{
		Fare:          rec.Amount("fare"),
		Tax:           rec.Amount("tax"),
		Amount:        rec.Amount("amount"),
		NetRemit:      rec.Amount("netRemit"),
		DocumentCount: int(rec.Number("documentCount")),
	}
	a.agentTotalsExplicit = true
	return resultOK()
}

func (a *assembler) applyFileTotals(rec *DecodedRecord) applyResult {
	a.finalizeDocument()
	a.finalizeAgent()

	a.file.Totals = domain.SettlementTotals{
		Fare:          rec.Amount("fare"),
		Tax:           rec.Amount("tax"),
		Amount:        rec.Amount("amount"),
		NetRemit:      rec.Amount("netRemit"),
		DocumentCount: int(rec.Number("documentCount")),
	}
	a.fileTotalsExplicit = true
	return resultOK()
}

// finalizeDocument appends the pending document to the open agent. A
// document that never received a document number is discarded rather than
// finalized. Without an agent the document is buffered or dropped per the
// orphan policy.
func (a *assembler) finalizeDocument() {
	doc := a.doc
	a.doc = nil
	if doc == nil || doc.DocumentNumber == "" {
		return
	}
	if a.agent != nil {
		a.agent.Documents = append(a.agent.Documents, *doc)
		return
	}
	if a.opts.OrphanPolicy == OrphanBuffer {
		a.orphans = append(a.orphans, *doc)
	}
}

// finalizeAgent appends the pending agent to the file, reconciling its
// totals from owned documents unless an office-totals record was seen.
func (a *assembler) finalizeAgent() {
	agent := a.agent
	explicit := a.agentTotalsExplicit
	a.agent = nil
	a.agentTotalsExplicit = false

	if agent == nil {
		return
	}
	if agent.IATANumber == "" && len(agent.Documents) == 0 {
		return
	}

	if !explicit {
		totals := domain.SettlementTotals{DocumentCount: len(agent.Documents)}
		for _, doc := range agent.Documents {
			totals.Fare = totals.Fare.Add(doc.FareAmount)
			totals.Tax = totals.Tax.Add(doc.TaxAmount)
			totals.Amount = totals.Amount.Add(doc.TotalAmount)
			totals.NetRemit = totals.NetRemit.Add(doc.NetRemittance)
		}
		agent.Totals = totals
	}

	a.file.Agents = append(a.file.Agents, *agent)
}

// finish closes the pass: pending entities finalize and file totals
// reconcile from agents unless a file-totals record was seen.
func (a *assembler) finish() *domain.ParsedFile {
	a.finalizeDocument()
	if n := len(a.orphans); n > 0 {
		a.file.Warnings = append(a.file.Warnings,
			fmt.Sprintf("End of input: %d document(s) without an owning agent; dropped", n))
		a.orphans = nil
	}
	a.finalizeAgent()

	if !a.fileTotalsExplicit {
		totals := domain.SettlementTotals{}
		for _, agent := range a.file.Agents {
			totals.Fare = totals.Fare.Add(agent.Totals.Fare)
			totals.Tax = totals.Tax.Add(agent.Totals.Tax)
			totals.Amount = totals.Amount.Add(agent.Totals.Amount)
			totals.NetRemit = totals.NetRemit.Add(agent.Totals.NetRemit)

			count := agent.Totals.DocumentCount
			if count == 0 {
				count = len(agent.Documents)
			}
			totals.DocumentCount += count
		}
		a.file.Totals = totals
	}

	return a.file
}
