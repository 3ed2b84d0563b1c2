package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12,34%", 12.34, false},
		{"1.234,5", 1234.5, false},
		{"-0,87", -0.87, false},
		{"15,5", 15.5, false},
		{"1.234.567", 1234567, false},
		{"  7,2%  ", 7.2, false},
		{"0,00%", 0, false},
		{"-", 0, true},
		{"", 0, true},
		{"n/a", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseNumber(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumber(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFind_BasicExtraction(t *testing.T) {
	doc := docFromHTML(t, `<table>
		<tr><td>Div. yield</td><td>8,31%</td></tr>
		<tr><td>ROE</td><td>15,2%</td></tr>
	</table>`)

	if v := Find(doc, "Div. yield"); v == nil || *v != 8.31 {
		t.Errorf("Div. yield = %v, want 8.31", v)
	}
	if v := Find(doc, "ROE"); v == nil || *v != 15.2 {
		t.Errorf("ROE = %v, want 15.2", v)
	}
}

func TestFind_CaseInsensitiveSubstring(t *testing.T) {
	doc := docFromHTML(t, `<table>
		<tr><td>?Marg. líquida</td><td>23,5%</td></tr>
	</table>`)

	if v := Find(doc, "marg. líquida"); v == nil || *v != 23.5 {
		t.Errorf("substring match = %v, want 23.5", v)
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	doc := docFromHTML(t, `<table>
		<tr><td>Div. yield</td><td>5,0%</td></tr>
		<tr><td>Div. yield</td><td>9,9%</td></tr>
	</table>`)

	v := Find(doc, "Div. yield")
	if v == nil || *v != 5.0 {
		t.Errorf("expected first row's value 5.0, got %v", v)
	}
}

func TestFind_LabelMissing(t *testing.T) {
	doc := docFromHTML(t, `<table><tr><td>ROE</td><td>10,0%</td></tr></table>`)
	if v := Find(doc, "Cap rate"); v != nil {
		t.Errorf("expected nil for missing label, got %v", *v)
	}
}

func TestFind_NoValueCell(t *testing.T) {
	doc := docFromHTML(t, `<table><tr><td>ROE</td></tr></table>`)
	if v := Find(doc, "ROE"); v != nil {
		t.Errorf("expected nil when value cell is missing, got %v", *v)
	}
}

func TestFind_UnparsableValue(t *testing.T) {
	doc := docFromHTML(t, `<table>
		<tr><td>Vacância média</td><td>-</td></tr>
		<tr><td>Vacância média</td><td>3,1%</td></tr>
	</table>`)

	// First match wins even when its value does not parse; the later row is
	// never consulted.
	if v := Find(doc, "Vacância média"); v != nil {
		t.Errorf("expected nil for unparsable first match, got %v", *v)
	}
}
