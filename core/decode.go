// Package core has the ingestion pipeline and the selection/projection
// engine for hivetrend.
package core

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"github.com/apiarylab/hivetrend/schema"
	"golang.org/x/text/encoding/charmap"
)

// RawTable is the untyped tabular form of one input, before column
// resolution. Rows hold the raw cell strings; shorter rows are allowed
// and read as empty cells.
type RawTable struct {
	Header        []string
	Rows          [][]string
	DelimiterName string
	Delimiter     rune
	Encoding      string
}

// decodeAttempt is one (delimiter, encoding) combination. The slice below
// is a priority policy, not a search: earlier entries win, and the order
// never changes between runs so the same bytes always select the same pair.
type decodeAttempt struct {
	delimiter rune
	name      string
	encoding  string
}

// decodeAttempts tries the Western-European 8-bit encoding before UTF-8,
// matching the source systems these exports come from, and the semicolon
// delimiter before the comma.
var decodeAttempts = []decodeAttempt{
	{';', "semicolon", "latin-1"},
	{',', "comma", "latin-1"},
	{';', "semicolon", "utf-8"},
	{',', "comma", "utf-8"},
}

// DecodeRecords turns raw bytes into a RawTable by trying each decode
// attempt in priority order and accepting the first one that parses and
// yields more than one column. It returns a DecodeError when no attempt
// succeeds; no partial table is ever returned.
func DecodeRecords(source string, data []byte) (*RawTable, error) {
	for _, attempt := range decodeAttempts {
		text, ok := decodeText(data, attempt.encoding)
		if !ok {
			continue
		}
		header, rows, ok := parseDelimited(text, attempt.delimiter)
		if !ok {
			continue
		}
		return &RawTable{
			Header:        header,
			Rows:          rows,
			DelimiterName: attempt.name,
			Delimiter:     attempt.delimiter,
			Encoding:      attempt.encoding,
		}, nil
	}
	return nil, &schema.DecodeError{Source: source, Attempts: len(decodeAttempts)}
}

// decodeText decodes the bytes for the named encoding. Latin-1 maps every
// byte, so only UTF-8 can reject input here; the column-count check in
// parseDelimited is what actually filters wrong guesses.
func decodeText(data []byte, encoding string) (string, bool) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // strip BOM
	switch encoding {
	case "latin-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	default: // utf-8
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
}

// parseDelimited parses the text with the given delimiter and reports
// success only when the result has more than one column.
func parseDelimited(text string, delimiter rune) ([]string, [][]string, bool) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1 // irregular exports pad or truncate trailing cells
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return nil, nil, false
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) <= 1 {
		return nil, nil, false
	}
	return header, records[1:], true
}

// cell returns the trimmed value at the column index, tolerating rows that
// are shorter than the header.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
