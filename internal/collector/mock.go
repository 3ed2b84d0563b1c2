package collector

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MockQuoteFetcher returns controllable fixed data for development and testing.
type MockQuoteFetcher struct {
	Quote *Quote
	Err   error
}

func (m *MockQuoteFetcher) Name() string { return "mock" }

func (m *MockQuoteFetcher) FetchQuote(_ context.Context, _ string) (*Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quote, nil
}

// MockFundamentalsFetcher serves a fixed HTML document.
type MockFundamentalsFetcher struct {
	HTML string
	Err  error
}

func (m *MockFundamentalsFetcher) Name() string { return "mock" }

func (m *MockFundamentalsFetcher) FetchFundamentals(_ context.Context, _ string) (*goquery.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(m.HTML))
}
