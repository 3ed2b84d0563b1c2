package model

// IndicatorSet holds every indicator resolved for one ticker.
// Pointer fields distinguish "absent" from zero: a nil field means the
// upstream source did not provide the value (or it failed to parse), and
// no scoring rule may treat it as 0.
// Built once per request and never mutated afterwards.
type IndicatorSet struct {
	Ticker  string
	Company string

	CurrentPrice *float64
	MarketCap    *float64

	// Quote-feed pass-through (already numeric, equities only).
	PriceEarnings  *float64
	EarningsGrowth *float64 // fraction, e.g. 0.06 = 6%

	// Scraped fundamentals (locale-parsed).
	DividendYield    *float64
	ROE              *float64
	ROIC             *float64
	EVEBITDA         *float64
	NetMargin        *float64
	DebtToEquity     *float64
	RevenueGrowth5y  *float64
	PriceToBook      *float64
	CapRate          *float64
	Vacancy          *float64
	AvgLiquidity     *float64
	DividendPerShare *float64
}

// Float returns a pointer to v, for building indicator sets concisely.
func Float(v float64) *float64 { return &v }
