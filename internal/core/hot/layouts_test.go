package hot_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/hot_settlement_app/internal/core/hot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record builds one fixed-width line: the 5-character identifier followed
// by values placed at their 1-indexed byte offsets.
func record(id string, fields map[int]string) string {
	buf := []byte(strings.Repeat(" ", hot.RecordLength))
	copy(buf, id)
	for start, value := range fields {
		copy(buf[start-1:], value)
	}
	return string(buf)
}

func TestAllRegisteredLayoutsValidate(t *testing.T) {
	reg := hot.NewRegistry(hot.Revision23)
	ids := reg.IDs()
	require.NotEmpty(t, ids)

	for _, id := range ids {
		layout, ok := reg.Layout(id)
		require.True(t, ok, id)
		assert.NoError(t, layout.Validate(), id)
		assert.Equal(t, id, layout.ID)
	}
}

func TestRegistryUnknownRevisionFallsBack(t *testing.T) {
	reg := hot.NewRegistry(hot.Revision("99"))
	assert.Equal(t, hot.Revision23, reg.Revision())

	_, ok := reg.Layout("BFH01")
	assert.True(t, ok)
}

func TestLayoutValidateRejectsOverlap(t *testing.T) {
	layout := hot.RecordLayout{
		ID: "TST01",
		Fields: []hot.FieldDescriptor{
			{Name: "a", Start: 6, Length: 10, Kind: hot.KindText},
			{Name: "b", Start: 10, Length: 5, Kind: hot.KindText},
		},
	}
	err := layout.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestLayoutValidateRejectsOutOfRange(t *testing.T) {
	layout := hot.RecordLayout{
		ID: "TST02",
		Fields: []hot.FieldDescriptor{
			{Name: "a", Start: 130, Length: 10, Kind: hot.KindText},
		},
	}
	require.Error(t, layout.Validate())

	layout = hot.RecordLayout{
		ID: "TST03",
		Fields: []hot.FieldDescriptor{
			{Name: "a", Start: 0, Length: 3, Kind: hot.KindText},
		},
	}
	require.Error(t, layout.Validate())
}

func decodeAs(t *testing.T, id, line string) *hot.DecodedRecord {
	t.Helper()
	reg := hot.NewRegistry(hot.Revision23)
	layout, ok := reg.Layout(id)
	require.True(t, ok, id)
	return hot.NewDecoder(2).Decode(layout, line)
}

func TestFileHeaderLayout(t *testing.T) {
	line := record("BFH01", map[int]string{
		6:  "UK ",
		9:  "150623",
		15: "230601",
		21: "23",
		23: "H",
		24: "000042",
	})
	rec := decodeAs(t, "BFH01", line)

	assert.Equal(t, "UK", rec.Text("bspCode"))
	assert.Equal(t, "150623", rec.Text("fileDate"))
	assert.Equal(t, "230601", rec.Text("billingPeriod"))
	assert.Equal(t, "23", rec.Text("dishVersion"))
	assert.Equal(t, "H", rec.Text("fileTypeInd"))
	assert.Equal(t, int64(42), rec.Number("sequenceNumber"))
}

func TestDocumentIdentificationLayout(t *testing.T) {
	line := record("BKS24", map[int]string{
		6:  "1234567890123",
		19: "TKTT",
		23: "150623",
		29: "1234567890124",
		42: "9876543210987",
		55: "010123",
		61: "30",
		63: "I",
	})
	rec := decodeAs(t, "BKS24", line)

	assert.Equal(t, "1234567890123", rec.Text("documentNumber"))
	assert.Equal(t, "TKTT", rec.Text("transactionCode"))
	assert.Equal(t, "150623", rec.Text("issueDate"))
	assert.Equal(t, "1234567890124", rec.Text("conjunctionTicket"))
	assert.Equal(t, "9876543210987", rec.Text("originalDocumentNumber"))
	assert.Equal(t, "010123", rec.Text("originalIssueDate"))
	assert.Equal(t, "30", rec.Text("formCode"))
	assert.Equal(t, "I", rec.Text("domIntIndicator"))
}

func TestDocumentAmountsLayout(t *testing.T) {
	line := record("BKS30", map[int]string{
		6:  "00000000100{",
		18: "00000000025{",
		30: "00000000000{",
		42: "00000000125{",
		54: "GBP",
		57: "00000000110{",
	})
	rec := decodeAs(t, "BKS30", line)

	assert.Equal(t, "10", rec.Amount("fareAmount").String())
	assert.Equal(t, "2.5", rec.Amount("taxAmount").String())
	assert.True(t, rec.Amount("penaltyAmount").IsZero())
	assert.Equal(t, "12.5", rec.Amount("totalAmount").String())
	assert.Equal(t, "GBP", rec.Text("currencyCode"))
	assert.Equal(t, "11", rec.Amount("equivFareAmount").String())
}

func TestTaxBreakdownLayoutTripletPositions(t *testing.T) {
	line := record("BKS31", map[int]string{
		6:   "GBYQ000000015{",
		20:  "GBUB000000010{",
		118: "USXF000000005{",
	})
	rec := decodeAs(t, "BKS31", line)

	assert.Equal(t, "GB", rec.Text("taxCountry1"))
	assert.Equal(t, "YQ", rec.Text("taxCode1"))
	assert.Equal(t, "1.5", rec.Amount("taxAmount1").String())

	assert.Equal(t, "GB", rec.Text("taxCountry2"))
	assert.Equal(t, "UB", rec.Text("taxCode2"))
	assert.Equal(t, "1", rec.Amount("taxAmount2").String())

	assert.Equal(t, "US", rec.Text("taxCountry9"))
	assert.Equal(t, "XF", rec.Text("taxCode9"))
	assert.Equal(t, "0.5", rec.Amount("taxAmount9").String())

	assert.Equal(t, "", rec.Text("taxCountry3"))
	assert.True(t, rec.Amount("taxAmount3").IsZero())
}

func TestFlightSegmentLayout(t *testing.T) {
	line := record("BKI63", map[int]string{
		6:  "LHR",
		9:  "JFK",
		12: "BA",
		14: "0117",
		18: "Y",
		19: "200623",
		25: "YIFLEX",
		38: "O",
		39: "1",
		40: "0930",
		44: "1230",
	})
	rec := decodeAs(t, "BKI63", line)

	assert.Equal(t, "LHR", rec.Text("origin"))
	assert.Equal(t, "JFK", rec.Text("destination"))
	assert.Equal(t, "BA", rec.Text("carrier"))
	assert.Equal(t, "0117", rec.Text("flightNumber"))
	assert.Equal(t, "Y", rec.Text("bookingClass"))
	assert.Equal(t, "200623", rec.Text("flightDate"))
	assert.Equal(t, "YIFLEX", rec.Text("fareBasis"))
	assert.Equal(t, "O", rec.Text("stopoverIndicator"))
	assert.Equal(t, "1", rec.Text("coupon"))
	assert.Equal(t, "0930", rec.Text("departureTime"))
	assert.Equal(t, "1230", rec.Text("arrivalTime"))
}

func TestOfficeAndFileTotalsLayouts(t *testing.T) {
	office := record("BOT94", map[int]string{
		6:  "00000000009999I",
		21: "00000000000100{",
		36: "00000000010099I",
		51: "00000000009500{",
		66: "000005",
	})
	rec := decodeAs(t, "BOT94", office)
	assert.Equal(t, "999.99", rec.Amount("fare").String())
	assert.Equal(t, "10", rec.Amount("tax").String())
	assert.Equal(t, "1009.99", rec.Amount("amount").String())
	assert.Equal(t, "950", rec.Amount("netRemit").String())
	assert.Equal(t, int64(5), rec.Number("documentCount"))

	file := record("BFT99", map[int]string{
		6:  "00000000009999I",
		66: "00000012",
	})
	rec = decodeAs(t, "BFT99", file)
	assert.Equal(t, "999.99", rec.Amount("fare").String())
	assert.Equal(t, int64(12), rec.Number("documentCount"))
}

func TestDecoderPadsShortLines(t *testing.T) {
	// A truncated record decodes with trailing fields empty, not a panic.
	rec := decodeAs(t, "BOH03", "BOH0312345678")
	assert.Equal(t, "12345678", rec.Text("iataNumber"))
	assert.Equal(t, "", rec.Text("agentName"))
	assert.Equal(t, "", rec.Text("agentCountry"))
}
