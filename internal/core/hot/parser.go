package hot

import (
	"fmt"
	"strings"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
)

// Parse decodes HOT/LIFT file content with the default options. It never
// returns an error: anomalies surface on the ParsedFile's Warnings and
// Errors lists, and structurally invalid input yields an empty model.
func Parse(content []byte) *domain.ParsedFile {
	return ParseWithOptions(content, DefaultOptions())
}

// ParseWithOptions decodes HOT/LIFT file content in a single forward pass.
// Given identical bytes and options the output is identical, including
// diagnostic ordering.
func ParseWithOptions(content []byte, opts Options) *domain.ParsedFile {
	opts = opts.withDefaults()

	registry := NewRegistry(opts.Revision)
	resolver := NewResolver(registry)
	decoder := NewDecoder(opts.AmountScale)
	asm := newAssembler(opts)

	// The raw bytes are carried as-is: offsets and windowing count wire
	// bytes, text fields convert to UTF-8 at extraction time.
	for lineNo, line := range splitRecords(string(content)) {
		lineNo++ // diagnostics are 1-based

		line = strings.TrimRight(line, "\r\n")
		if len(line) < 5 {
			continue
		}
		if opts.KeepRawRecords {
			asm.file.RawRecords = append(asm.file.RawRecords, line)
		}

		layout, ok := resolver.Resolve(line)
		if !ok {
			asm.file.Warnings = append(asm.file.Warnings,
				fmt.Sprintf("Line %d: unknown record type '%s'", lineNo, line[:5]))
			continue
		}

		res := applyLine(asm, decoder, layout, line)
		switch res.status {
		case applySkipped:
			asm.file.Warnings = append(asm.file.Warnings,
				fmt.Sprintf("Line %d: %s", lineNo, res.reason))
		case applyFailed:
			asm.file.Errors = append(asm.file.Errors,
				fmt.Sprintf("Line %d: error parsing record - %v", lineNo, res.err))
		}
	}

	return asm.finish()
}

// applyLine decodes and applies one record, converting any panic into a
// failed result so a single bad record never aborts the pass.
func applyLine(asm *assembler, decoder *Decoder, layout *RecordLayout, line string) (res applyResult) {
	defer func() {
		if r := recover(); r != nil {
			res = applyResult{status: applyFailed, err: fmt.Errorf("%v", r)}
		}
	}()
	return asm.apply(decoder.Decode(layout, line))
}

// splitRecords splits content on any line-break convention. Files that
// carry no line breaks split into consecutive fixed-width windows.
func splitRecords(content string) []string {
	if strings.ContainsAny(content, "\r\n") {
		content = strings.ReplaceAll(content, "\r\n", "\n")
		content = strings.ReplaceAll(content, "\r", "\n")
		return strings.Split(content, "\n")
	}

	var records []string
	for i := 0; i < len(content); i += RecordLength {
		end := i + RecordLength
		if end > len(content) {
			end = len(content)
		}
		records = append(records, content[i:end])
	}
	return records
}
