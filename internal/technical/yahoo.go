package technical

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"B3Advisor/internal/calculator"
	"B3Advisor/internal/model"
)

// YahooScorer computes the technical signals from the Yahoo Finance chart
// API, using six months of daily bars. B3 tickers are suffixed ".SA" on
// Yahoo.
type YahooScorer struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooScorer creates a Yahoo chart scorer with an explicit request
// timeout.
func NewYahooScorer(timeout time.Duration) *YahooScorer {
	return &YahooScorer{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: "https://query1.finance.yahoo.com",
	}
}

func (y *YahooScorer) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// Signals fetches six months of daily closes and evaluates the two bonus
// conditions. The 200-day average needs more history than the window
// provides for young listings; in that case the trend signal is simply
// false, not an error.
func (y *YahooScorer) Signals(ctx context.Context, ticker string) (Signals, error) {
	closes, err := y.fetchDailyCloses(ctx, ticker+".SA")
	if err != nil {
		return Signals{}, err
	}
	if len(closes) == 0 {
		return Signals{}, fmt.Errorf("yahoo: no price data for %s", ticker)
	}

	var sig Signals
	if rsi, err := calculator.RSI(closes, 14); err == nil && rsi < 30 {
		sig.Oversold = true
	}
	if ma, err := calculator.SMA(closes, 200); err == nil && closes[len(closes)-1] > ma {
		sig.AboveLongAverage = true
	}
	return sig, nil
}

type closeWithTime struct {
	ts    int64
	close float64
}

func (y *YahooScorer) fetchDailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=6mo", y.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := y.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo read body: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: yahoo status %d", model.ErrUpstream, resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("%w: yahoo decode: %v", model.ErrUpstream, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: yahoo api error: %s", model.ErrUpstream, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w: yahoo: no data returned", model.ErrUpstream)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: yahoo: no quote series", model.ErrUpstream)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]closeWithTime, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, closeWithTime{ts: ts, close: toFloat(quote.Close[i])})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.close
	}
	return closes, nil
}
