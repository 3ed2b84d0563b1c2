// Package extractor pulls locale-formatted numeric fields out of the
// fundamentals page, which is a flat sequence of two-cell table rows pairing
// an indicator label with its value.
package extractor

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Find locates the first td whose trimmed text contains label
// (case-insensitive) and parses the next sibling td as a Brazilian-locale
// number. Later rows matching the same label are never consulted.
// Returns nil when the label is missing, has no value cell, or the value
// does not parse; a missing single field is a diagnostic, not an error.
func Find(doc *goquery.Document, label string) *float64 {
	label = strings.ToLower(label)

	var result *float64
	doc.Find("td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(cell.Text()))
		if !strings.Contains(text, label) {
			return true
		}
		value := cell.NextFiltered("td")
		if value.Length() == 0 {
			log.Printf("[WARN] indicator %q has no value cell", label)
			return false
		}
		v, err := ParseNumber(value.Text())
		if err != nil {
			log.Printf("[WARN] indicator %q: cannot parse %q", label, strings.TrimSpace(value.Text()))
			return false
		}
		result = &v
		return false
	})

	if result == nil {
		log.Printf("[WARN] indicator not resolved: %s", label)
	}
	return result
}

// ParseNumber converts a Brazilian-locale numeric string to a float64:
// a trailing "%" is dropped, "." is a thousands separator, "," the decimal
// point. "1.234,5" -> 1234.5, "12,34%" -> 12.34, "-0,87" -> -0.87.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || s == "-" {
		return 0, errors.New("empty numeric field")
	}
	return strconv.ParseFloat(s, 64)
}
