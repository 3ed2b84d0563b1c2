// Package analyzer runs one full analysis: cache lookup, upstream fetches,
// indicator building, scoring, profile adjustment, and cache/history writes.
package analyzer

import (
	"context"
	"log"

	"B3Advisor/internal/cache"
	"B3Advisor/internal/collector"
	"B3Advisor/internal/model"
	"B3Advisor/internal/recorder"
	"B3Advisor/internal/strategy"
	"B3Advisor/internal/technical"
)

// Analyzer wires the collaborators of one analysis request.
type Analyzer struct {
	Collector *collector.Collector
	Tech      technical.Scorer // nil disables the technical bonus
	Cache     *cache.Cache
	Recorder  recorder.Recorder
}

// New creates an Analyzer.
func New(col *collector.Collector, tech technical.Scorer, c *cache.Cache, rec recorder.Recorder) *Analyzer {
	return &Analyzer{Collector: col, Tech: tech, Cache: c, Recorder: rec}
}

// Analyze produces the report for (ticker, class, profile). Within the cache
// validity window the stored report is returned without touching any
// upstream. Aborting errors (not found, upstream failure) never write the
// cache. No call is ever retried.
func (a *Analyzer) Analyze(ctx context.Context, ticker string, class model.AssetClass, profile model.Profile) (any, error) {
	key := cache.Key(class, ticker, profile)
	if v, ok := a.Cache.Get(key); ok {
		return v, nil
	}

	set, err := a.Collector.Collect(ctx, ticker, class)
	if err != nil {
		return nil, err
	}

	result := strategy.Score(set, class, a.techSignals(ctx, ticker))
	result.Recommendation = strategy.AdjustForProfile(result.Recommendation, result.TotalScore, profile)

	report := buildReport(set, class, profile, result)
	a.Cache.Set(key, report)

	if err := a.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		Ticker:         ticker,
		AssetClass:     class,
		Profile:        profile,
		Price:          set.CurrentPrice,
		TotalScore:     result.TotalScore,
		MaxScore:       result.MaxScore,
		Recommendation: result.Recommendation,
	}); err != nil {
		log.Printf("[ERROR] record analysis %s: %v", ticker, err)
	}

	return report, nil
}

// techSignals evaluates the optional chart bonus; any failure degrades to
// "unavailable" (nil) instead of failing the request.
func (a *Analyzer) techSignals(ctx context.Context, ticker string) *technical.Signals {
	if a.Tech == nil {
		return nil
	}
	sig, err := a.Tech.Signals(ctx, ticker)
	if err != nil {
		log.Printf("[WARN] technical signals %s: %v", ticker, err)
		return nil
	}
	return &sig
}

func buildReport(set *model.IndicatorSet, class model.AssetClass, profile model.Profile, result model.ScoreResult) any {
	score := model.FormatScore(result.TotalScore, result.MaxScore)

	if class == model.AssetFII {
		return &model.FundReport{
			Ticker:           set.Ticker,
			Company:          set.Company,
			Price:            set.CurrentPrice,
			DividendYield:    set.DividendYield,
			PriceToBook:      set.PriceToBook,
			Vacancy:          set.Vacancy,
			CapRate:          set.CapRate,
			AvgLiquidity:     set.AvgLiquidity,
			DividendPerShare: set.DividendPerShare,
			Score:            score,
			Recommendation:   result.Recommendation,
			Explanations:     result.Explanations,
			Profile:          profile,
		}
	}

	return &model.EquityReport{
		Ticker:         set.Ticker,
		Company:        set.Company,
		Price:          set.CurrentPrice,
		PriceEarnings:  set.PriceEarnings,
		DividendYield:  set.DividendYield,
		ROE:            set.ROE,
		ROIC:           set.ROIC,
		EVEBITDA:       set.EVEBITDA,
		NetMargin:      set.NetMargin,
		DebtToEquity:   set.DebtToEquity,
		RevenueGrowth:  set.RevenueGrowth5y,
		MarketCap:      set.MarketCap,
		Score:          score,
		Recommendation: result.Recommendation,
		Explanations:   result.Explanations,
		Profile:        profile,
	}
}
