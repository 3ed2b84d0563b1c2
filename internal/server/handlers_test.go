package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"B3Advisor/internal/analyzer"
	"B3Advisor/internal/cache"
	"B3Advisor/internal/collector"
	"B3Advisor/internal/model"
	"B3Advisor/internal/recorder"
)

const equityFixture = `<table>
	<tr><td>Div. yield</td><td>5,0%</td></tr>
	<tr><td>ROE</td><td>15,0%</td></tr>
	<tr><td>ROIC</td><td>9,0%</td></tr>
	<tr><td>EV / EBITDA</td><td>7,0</td></tr>
	<tr><td>Marg. líquida</td><td>12,0%</td></tr>
	<tr><td>Div br/ patrim</td><td>0,40</td></tr>
	<tr><td>Cres. rec (5a)</td><td>6,0%</td></tr>
</table>`

func newTestServer(quotes collector.QuoteFetcher, fundamentals collector.FundamentalsFetcher) *Server {
	col := collector.NewCollector(quotes, fundamentals)
	an := analyzer.New(col, nil, cache.New(time.Minute), recorder.NewNoopRecorder())
	return New(":0", an)
}

func doRequest(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func workingServer() *Server {
	return newTestServer(
		&collector.MockQuoteFetcher{Quote: &collector.Quote{
			Price:          model.Float(30),
			LongName:       "Petróleo Brasileiro S.A.",
			PriceEarnings:  model.Float(12),
			EarningsGrowth: model.Float(0.06),
		}},
		&collector.MockFundamentalsFetcher{HTML: equityFixture},
	)
}

func TestHandleEquity_OK(t *testing.T) {
	w := doRequest(workingServer(), "/analise/acao/petr4")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var report model.EquityReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if report.Ticker != "PETR4" {
		t.Errorf("ticker should be upcased, got %q", report.Ticker)
	}
	if report.Profile != model.ProfileModerate {
		t.Errorf("profile should default to moderado, got %s", report.Profile)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}

func TestHandleEquity_ProfileQuery(t *testing.T) {
	w := doRequest(workingServer(), "/analise/acao/PETR4?perfil=conservador")

	var report model.EquityReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if report.Profile != model.ProfileConservative {
		t.Errorf("profile = %s, want conservador", report.Profile)
	}
}

func TestHandleEquity_FIITickerRejected(t *testing.T) {
	w := doRequest(workingServer(), "/analise/acao/HGLG11")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["erro"] != msgUseFII {
		t.Errorf("erro = %q", body["erro"])
	}
}

func TestHandleFund_EquityTickerRejected(t *testing.T) {
	w := doRequest(workingServer(), "/analise/fii/PETR4")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleEquity_NotFound(t *testing.T) {
	s := newTestServer(
		&collector.MockQuoteFetcher{Err: model.ErrNotFound},
		&collector.MockFundamentalsFetcher{HTML: equityFixture},
	)
	w := doRequest(s, "/analise/acao/XXXX3")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleEquity_UpstreamFailureHidesDetail(t *testing.T) {
	s := newTestServer(
		&collector.MockQuoteFetcher{Quote: &collector.Quote{LongName: "X"}},
		&collector.MockFundamentalsFetcher{Err: model.ErrUpstream},
	)
	w := doRequest(s, "/analise/acao/PETR4")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["erro"] != msgUpstream {
		t.Errorf("response must carry the stable message, got %q", body["erro"])
	}
}
