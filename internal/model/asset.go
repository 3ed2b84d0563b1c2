package model

import "strings"

// AssetClass determines which label vocabulary and rule table apply.
type AssetClass string

const (
	AssetEquity AssetClass = "acao"
	AssetFII    AssetClass = "fii"
)

// Classify infers the asset class from the B3 naming convention:
// tickers ending in "11" are real-estate fund (FII) quotas, everything
// else is treated as an equity.
func Classify(ticker string) AssetClass {
	if strings.HasSuffix(strings.ToUpper(ticker), "11") {
		return AssetFII
	}
	return AssetEquity
}

// Profile is the caller's risk posture. It remaps the score-to-recommendation
// thresholds; moderate is the baseline.
type Profile string

const (
	ProfileConservative Profile = "conservador"
	ProfileModerate     Profile = "moderado"
	ProfileAggressive   Profile = "agressivo"
)

// ParseProfile normalizes a profile query value. Empty or unrecognized
// values fall back to moderate rather than failing.
func ParseProfile(s string) Profile {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileConservative:
		return ProfileConservative
	case ProfileAggressive:
		return ProfileAggressive
	default:
		return ProfileModerate
	}
}

// Recommendation is the final verdict for a ticker.
type Recommendation string

const (
	Buy  Recommendation = "COMPRAR"
	Hold Recommendation = "MANTER"
	Sell Recommendation = "VENDER"
)
