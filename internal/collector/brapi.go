package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"B3Advisor/internal/model"
)

// BrapiFetcher implements QuoteFetcher against the brapi.dev quote API.
type BrapiFetcher struct {
	Client  *http.Client
	BaseURL string
	Token   string // optional API token appended as a query parameter
}

// NewBrapiFetcher creates a brapi.dev fetcher with an explicit request timeout.
func NewBrapiFetcher(token string, timeout time.Duration) *BrapiFetcher {
	return &BrapiFetcher{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: "https://brapi.dev/api",
		Token:   token,
	}
}

func (f *BrapiFetcher) Name() string { return "brapi" }

// brapiQuote is the response structure from the brapi quote endpoint.
type brapiQuote struct {
	Results []struct {
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		LongName           string   `json:"longName"`
		PriceEarnings      *float64 `json:"priceEarnings"`
		EarningsGrowth     *float64 `json:"earningsGrowth"`
		MarketCap          *float64 `json:"marketCap"`
	} `json:"results"`
}

func (f *BrapiFetcher) FetchQuote(ctx context.Context, ticker string) (*Quote, error) {
	u := fmt.Sprintf("%s/quote/%s", f.BaseURL, url.PathEscape(ticker))
	if f.Token != "" {
		u += "?token=" + url.QueryEscape(f.Token)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: brapi fetch: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: brapi read body: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: brapi status %d", model.ErrUpstream, resp.StatusCode)
	}

	var data brapiQuote
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: brapi decode: %v", model.ErrUpstream, err)
	}
	if len(data.Results) == 0 {
		return nil, model.ErrNotFound
	}

	r := data.Results[0]
	return &Quote{
		Price:          r.RegularMarketPrice,
		LongName:       r.LongName,
		PriceEarnings:  r.PriceEarnings,
		EarningsGrowth: r.EarningsGrowth,
		MarketCap:      r.MarketCap,
	}, nil
}
