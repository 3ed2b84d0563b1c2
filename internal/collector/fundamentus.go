package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"B3Advisor/internal/model"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FundamentusFetcher implements FundamentalsFetcher by scraping the
// fundamentus.com.br detail page. The page is served as ISO-8859-1 and is
// decoded to UTF-8 before parsing so the accented labels match.
type FundamentusFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewFundamentusFetcher creates a fundamentus scraper with an explicit
// request timeout.
func NewFundamentusFetcher(timeout time.Duration) *FundamentusFetcher {
	return &FundamentusFetcher{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: "https://www.fundamentus.com.br",
	}
}

func (f *FundamentusFetcher) Name() string { return "fundamentus" }

func (f *FundamentusFetcher) FetchFundamentals(ctx context.Context, ticker string) (*goquery.Document, error) {
	u := fmt.Sprintf("%s/detalhes.php?papel=%s", f.BaseURL, url.QueryEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	// The site blocks the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fundamentus fetch: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fundamentus status %d", model.ErrUpstream, resp.StatusCode)
	}

	reader := transform.NewReader(resp.Body, charmap.ISO8859_1.NewDecoder())
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: fundamentus parse: %v", model.ErrUpstream, err)
	}
	return doc, nil
}
