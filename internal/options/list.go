package options

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// formatList joins list items with commas. Items holding a comma, a quote,
// a line break or edge whitespace are quoted with inner quotes doubled, so
// parseList gives back the same items. The text itself never starts or
// ends with whitespace.
func formatList(items []string) string {
	if len(items) == 1 && items[0] == "" {
		return `""`
	}
	parts := make([]string, len(items))
	for i, item := range items {
		if needsQuotes(item) {
			item = `"` + strings.ReplaceAll(item, `"`, `""`) + `"`
		}
		parts[i] = item
	}
	return strings.Join(parts, ",")
}

func needsQuotes(item string) bool {
	if item == "" {
		return false
	}
	if strings.ContainsAny(item, ",\"\r\n") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(item)
	last, _ := utf8.DecodeLastRuneInString(item)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}

// parseList reads text written by formatList. Spaces after a separator are
// skipped so hand typed "a, b" reads as two items. Blank text is the empty
// list.
func parseList(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("column %d: %v", perr.Column, perr.Err)
		}
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("want one line of items, got %d", len(records))
	}
	return records[0], nil
}
