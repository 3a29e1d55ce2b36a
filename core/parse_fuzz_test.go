package core

import (
	"testing"
	"time"
)

// FuzzParseEntryDate fuzzes the date sanitizer with random inputs.
func FuzzParseEntryDate(f *testing.F) {
	seeds := []string{
		"1.4.2024",
		"01.04.2024",
		"8.4.2024 14:30",
		"31.12.1999 23:59:59",
		"2024-04-01", // ISO is rejected
		"31.02.2024", // impossible date
		"kein Datum",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		parsed, ok := ParseEntryDate(input)
		if !ok {
			return
		}
		// Accepted dates are always truncated to midnight UTC.
		if !parsed.Equal(parsed.Truncate(24 * time.Hour)) {
			t.Errorf("ParseEntryDate(%q) = %v, not midnight", input, parsed)
		}
	})
}

// FuzzParseNumber fuzzes the decimal-comma number parser.
func FuzzParseNumber(f *testing.F) {
	seeds := []string{
		"32,5",
		"33.1",
		"1,234.5",
		"-0,5",
		" 10 ",
		"",
		"zehn",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, _ = parseNumber(input)
	})
}

// FuzzDecodeRecords fuzzes the decoder with arbitrary byte streams.
func FuzzDecodeRecords(f *testing.F) {
	seeds := [][]byte{
		[]byte("Stockname;Datum des Eintrags\nHive 1;1.4.2024\n"),
		[]byte("Stockname,Datum des Eintrags\nHive 1,1.4.2024\n"),
		[]byte("V\xF6lkchen;Datum\n"),
		[]byte("\xEF\xBB\xBFStockname;Datum\n"),
		[]byte("single column\n"),
		{},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		table, err := DecodeRecords("fuzz.csv", data)
		if err != nil {
			return
		}
		// Any accepted parse has at least two header columns.
		if len(table.Header) < 2 {
			t.Errorf("accepted table with %d header columns", len(table.Header))
		}
	})
}
