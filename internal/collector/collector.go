package collector

import (
	"context"
	"fmt"

	"B3Advisor/internal/extractor"
	"B3Advisor/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// Fundamentus label vocabulary. These strings are an external contract with
// the scraped page's schema and are matched as case-insensitive substrings.
// Where the page knows several spellings ("Vol $ méd" vs "Liq. média diária")
// exactly one canonical label is used, so every field is requested once.
const (
	labelDividendYield    = "Div. yield"
	labelROE              = "ROE"
	labelROIC             = "ROIC"
	labelEVEBITDA         = "EV / EBITDA"
	labelNetMargin        = "Marg. líquida"
	labelDebtToEquity     = "Div br/ patrim"
	labelRevenueGrowth5y  = "Cres. rec (5a)"
	labelQuotePrice       = "Cotação"
	labelPriceToBook      = "P/VP"
	labelCapRate          = "Cap rate"
	labelVacancy          = "Vacância média"
	labelAvgLiquidity     = "Vol $ méd"
	labelDividendPerShare = "Dividendo/cota"
)

// Collector builds one IndicatorSet per request from the two upstream
// sources.
type Collector struct {
	Quotes       QuoteFetcher
	Fundamentals FundamentalsFetcher
}

// NewCollector creates a new Collector.
func NewCollector(quotes QuoteFetcher, fundamentals FundamentalsFetcher) *Collector {
	return &Collector{Quotes: quotes, Fundamentals: fundamentals}
}

// Collect fetches both sources and merges them into an IndicatorSet.
// Equities take price, company name, P/E, earnings growth and market cap
// straight from the quote feed; FIIs are resolved entirely from the
// fundamentals page. A failed fundamentals fetch aborts the request rather
// than degrading to an all-absent set.
func (c *Collector) Collect(ctx context.Context, ticker string, class model.AssetClass) (*model.IndicatorSet, error) {
	if class == model.AssetFII {
		doc, err := c.Fundamentals.FetchFundamentals(ctx, ticker)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", ticker, err)
		}
		return buildFII(ticker, doc), nil
	}

	quote, err := c.Quotes.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", ticker, err)
	}
	doc, err := c.Fundamentals.FetchFundamentals(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", ticker, err)
	}
	return buildEquity(ticker, quote, doc), nil
}

func buildEquity(ticker string, quote *Quote, doc *goquery.Document) *model.IndicatorSet {
	return &model.IndicatorSet{
		Ticker:          ticker,
		Company:         quote.LongName,
		CurrentPrice:    quote.Price,
		MarketCap:       quote.MarketCap,
		PriceEarnings:   quote.PriceEarnings,
		EarningsGrowth:  quote.EarningsGrowth,
		DividendYield:   extractor.Find(doc, labelDividendYield),
		ROE:             extractor.Find(doc, labelROE),
		ROIC:            extractor.Find(doc, labelROIC),
		EVEBITDA:        extractor.Find(doc, labelEVEBITDA),
		NetMargin:       extractor.Find(doc, labelNetMargin),
		DebtToEquity:    extractor.Find(doc, labelDebtToEquity),
		RevenueGrowth5y: extractor.Find(doc, labelRevenueGrowth5y),
	}
}

func buildFII(ticker string, doc *goquery.Document) *model.IndicatorSet {
	return &model.IndicatorSet{
		Ticker:           ticker,
		Company:          "FII " + ticker,
		CurrentPrice:     extractor.Find(doc, labelQuotePrice),
		DividendYield:    extractor.Find(doc, labelDividendYield),
		PriceToBook:      extractor.Find(doc, labelPriceToBook),
		CapRate:          extractor.Find(doc, labelCapRate),
		Vacancy:          extractor.Find(doc, labelVacancy),
		AvgLiquidity:     extractor.Find(doc, labelAvgLiquidity),
		DividendPerShare: extractor.Find(doc, labelDividendPerShare),
	}
}
