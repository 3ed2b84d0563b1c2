package model

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		ticker string
		want   AssetClass
	}{
		{"PETR4", AssetEquity},
		{"VALE3", AssetEquity},
		{"HGLG11", AssetFII},
		{"mxrf11", AssetFII},
		{"BPAC11", AssetFII}, // units share the suffix; documented convention quirk
		{"SANB11", AssetFII},
		{"ITUB3", AssetEquity},
	}
	for _, tt := range tests {
		if got := Classify(tt.ticker); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.ticker, got, tt.want)
		}
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in   string
		want Profile
	}{
		{"conservador", ProfileConservative},
		{"moderado", ProfileModerate},
		{"agressivo", ProfileAggressive},
		{" Agressivo ", ProfileAggressive},
		{"", ProfileModerate},
		{"arrojado", ProfileModerate},
	}
	for _, tt := range tests {
		if got := ParseProfile(tt.in); got != tt.want {
			t.Errorf("ParseProfile(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(7.0, 10); got != "7.00/10" {
		t.Errorf("FormatScore = %q, want 7.00/10", got)
	}
	if got := FormatScore(4.25, 8); got != "4.25/8" {
		t.Errorf("FormatScore = %q, want 4.25/8", got)
	}
}
