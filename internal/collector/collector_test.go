package collector

import (
	"context"
	"errors"
	"testing"

	"B3Advisor/internal/model"
)

const equityFixture = `<table>
	<tr><td>Div. yield</td><td>5,1%</td></tr>
	<tr><td>ROE</td><td>15,0%</td></tr>
	<tr><td>ROIC</td><td>9,3%</td></tr>
	<tr><td>EV / EBITDA</td><td>7,0</td></tr>
	<tr><td>Marg. líquida</td><td>12,4%</td></tr>
	<tr><td>Div br/ patrim</td><td>0,40</td></tr>
	<tr><td>Cres. rec (5a)</td><td>6,2%</td></tr>
</table>`

const fiiFixture = `<table>
	<tr><td>Cotação</td><td>102,50</td></tr>
	<tr><td>Div. yield</td><td>8,7%</td></tr>
	<tr><td>P/VP</td><td>0,95</td></tr>
	<tr><td>Cap rate</td><td>7,8%</td></tr>
	<tr><td>Vacância média</td><td>4,0%</td></tr>
	<tr><td>Vol $ méd (2m)</td><td>1.250,0</td></tr>
	<tr><td>Dividendo/cota</td><td>1,05</td></tr>
</table>`

func TestCollect_Equity(t *testing.T) {
	col := NewCollector(
		&MockQuoteFetcher{Quote: &Quote{
			Price:          model.Float(30.12),
			LongName:       "Petróleo Brasileiro S.A.",
			PriceEarnings:  model.Float(12),
			EarningsGrowth: model.Float(0.06),
			MarketCap:      model.Float(4.2e11),
		}},
		&MockFundamentalsFetcher{HTML: equityFixture},
	)

	set, err := col.Collect(context.Background(), "PETR4", model.AssetEquity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Company != "Petróleo Brasileiro S.A." {
		t.Errorf("company = %q", set.Company)
	}
	if set.PriceEarnings == nil || *set.PriceEarnings != 12 {
		t.Errorf("P/E pass-through = %v, want 12", set.PriceEarnings)
	}
	if set.ROE == nil || *set.ROE != 15.0 {
		t.Errorf("ROE = %v, want 15.0", set.ROE)
	}
	if set.DebtToEquity == nil || *set.DebtToEquity != 0.4 {
		t.Errorf("debt/equity = %v, want 0.4", set.DebtToEquity)
	}
	if set.RevenueGrowth5y == nil || *set.RevenueGrowth5y != 6.2 {
		t.Errorf("revenue growth 5y = %v, want 6.2", set.RevenueGrowth5y)
	}
	// FII-only fields stay absent for equities.
	if set.CapRate != nil || set.Vacancy != nil {
		t.Error("equity set must not carry FII-only fields")
	}
}

func TestCollect_FII(t *testing.T) {
	col := NewCollector(
		&MockQuoteFetcher{Err: errors.New("quote feed must not be called for FIIs")},
		&MockFundamentalsFetcher{HTML: fiiFixture},
	)

	set, err := col.Collect(context.Background(), "HGLG11", model.AssetFII)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Company != "FII HGLG11" {
		t.Errorf("company = %q, want FII HGLG11", set.Company)
	}
	if set.CurrentPrice == nil || *set.CurrentPrice != 102.5 {
		t.Errorf("price from Cotação = %v, want 102.5", set.CurrentPrice)
	}
	if set.AvgLiquidity == nil || *set.AvgLiquidity != 1250.0 {
		t.Errorf("avg liquidity = %v, want 1250.0", set.AvgLiquidity)
	}
	if set.DividendPerShare == nil || *set.DividendPerShare != 1.05 {
		t.Errorf("dividend/share = %v, want 1.05", set.DividendPerShare)
	}
}

func TestCollect_QuoteNotFound(t *testing.T) {
	col := NewCollector(
		&MockQuoteFetcher{Err: model.ErrNotFound},
		&MockFundamentalsFetcher{HTML: equityFixture},
	)

	_, err := col.Collect(context.Background(), "XXXX3", model.AssetEquity)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollect_FundamentalsFailureAborts(t *testing.T) {
	// A failed fundamentals fetch must abort, never degrade to all-absent.
	col := NewCollector(
		&MockQuoteFetcher{Quote: &Quote{LongName: "X"}},
		&MockFundamentalsFetcher{Err: model.ErrUpstream},
	)

	_, err := col.Collect(context.Background(), "PETR4", model.AssetEquity)
	if !errors.Is(err, model.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestCollect_PartialFundamentalsDegrade(t *testing.T) {
	// Missing individual rows degrade to absent fields, not an error.
	col := NewCollector(
		&MockQuoteFetcher{Quote: &Quote{LongName: "X", PriceEarnings: model.Float(10)}},
		&MockFundamentalsFetcher{HTML: `<table><tr><td>ROE</td><td>11,0%</td></tr></table>`},
	)

	set, err := col.Collect(context.Background(), "PETR4", model.AssetEquity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.ROE == nil || *set.ROE != 11.0 {
		t.Errorf("ROE = %v, want 11.0", set.ROE)
	}
	if set.DividendYield != nil || set.EVEBITDA != nil {
		t.Error("missing rows must resolve to absent")
	}
}
