package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/hot_settlement_app/internal/core/hot"
	portssvc "github.com/SscSPs/hot_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/hot_settlement_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure the service implements the facade
var _ portssvc.ParserSvcFacade = (*services.ParserService)(nil)

// hotLine builds one fixed-width record with values at 1-indexed offsets.
func hotLine(id string, fields map[int]string) string {
	buf := []byte(strings.Repeat(" ", hot.RecordLength))
	copy(buf, id)
	for start, value := range fields {
		copy(buf[start-1:], value)
	}
	return string(buf)
}

func sampleUpload() []byte {
	lines := []string{
		hotLine("BFH01", map[int]string{6: "UK ", 9: "150623", 21: "23", 23: "H"}),
		hotLine("BCH02", map[int]string{6: "125", 9: "GBP", 12: "01"}),
		hotLine("BOH03", map[int]string{6: "12345678", 14: "ACME TRAVEL"}),
		hotLine("BKS24", map[int]string{6: "1234567890123", 19: "TKTT"}),
		hotLine("BKS30", map[int]string{6: "00000000100{", 42: "00000000100{", 54: "GBP"}),
	}
	return []byte(strings.Join(lines, "\n"))
}

func TestParseHOT(t *testing.T) {
	svc := services.NewParserService(hot.DefaultOptions())

	parsed, err := svc.ParseHOT(context.Background(), sampleUpload())

	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "GBP", parsed.CurrencyCode)
	require.Len(t, parsed.Agents, 1)
	require.Len(t, parsed.Agents[0].Documents, 1)
	assert.Equal(t, "10", parsed.Agents[0].Documents[0].FareAmount.String())
}

func TestParseHOTNeverFailsOnGarbage(t *testing.T) {
	svc := services.NewParserService(hot.DefaultOptions())

	parsed, err := svc.ParseHOT(context.Background(), []byte("not a settlement file at all"))

	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Empty(t, parsed.Agents)
	assert.NotEmpty(t, parsed.Warnings)
}

func TestParseHOTHonoursConfiguredOptions(t *testing.T) {
	opts := hot.DefaultOptions()
	opts.OrphanPolicy = hot.OrphanDrop
	svc := services.NewParserService(opts)

	content := []byte(hotLine("BKS24", map[int]string{6: "1234567890123", 19: "TKTT"}))
	parsed, err := svc.ParseHOT(context.Background(), content)

	require.NoError(t, err)
	assert.Empty(t, parsed.Agents)
	require.Len(t, parsed.Warnings, 1)
	assert.Contains(t, parsed.Warnings[0], "document dropped")
}
