package collector

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Quote carries the pass-through numeric fields from the quote feed.
// Pointer fields may be nil when the feed omits them for a ticker.
type Quote struct {
	Price          *float64
	LongName       string
	PriceEarnings  *float64
	EarningsGrowth *float64
	MarketCap      *float64
}

// QuoteFetcher fetches current quote data for a ticker.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, ticker string) (*Quote, error)
	Name() string
}

// FundamentalsFetcher fetches the fundamentals page for a ticker as a
// parsed document.
type FundamentalsFetcher interface {
	FetchFundamentals(ctx context.Context, ticker string) (*goquery.Document, error)
	Name() string
}
