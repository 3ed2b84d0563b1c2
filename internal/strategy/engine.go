// Package strategy scores an indicator set against the asset class's rule
// table and derives the recommendation.
package strategy

import (
	"B3Advisor/internal/model"
	"B3Advisor/internal/technical"
)

// Score evaluates the class's rule table over the indicator set, folds in
// the technical bonus, and derives the recommendation. Hard sell overrides
// take precedence over the score thresholds.
//
// tech carries the optional chart signals; nil means the technical scorer
// was unavailable, which contributes zero bonus and an explanatory line but
// never fails the analysis.
//
// Scoring is a pure function of its inputs: identical inputs produce an
// identical result, including explanation order.
func Score(set *model.IndicatorSet, class model.AssetClass, tech *technical.Signals) model.ScoreResult {
	cfg := configFor(class)

	var total float64
	var explanations []string

	for _, rule := range cfg.Rules {
		if rule.Match(set) {
			total += rule.Weight
			explanations = append(explanations, rule.Label)
		} else if rule.FailLabel != "" {
			explanations = append(explanations, rule.FailLabel)
		}
	}

	if tech == nil {
		explanations = append(explanations, cfg.TechFailLabel)
	} else {
		total += tech.Bonus()
		if tech.Oversold {
			explanations = append(explanations, "✅ RSI indica sobrevenda (potencial de alta)")
		}
		if tech.AboveLongAverage {
			explanations = append(explanations, "✅ Preço acima da MM200, tendência de alta")
		}
	}

	return model.ScoreResult{
		TotalScore:     total,
		MaxScore:       cfg.MaxScore,
		Explanations:   explanations,
		Recommendation: recommend(set, total, cfg),
	}
}

func recommend(set *model.IndicatorSet, total float64, cfg classConfig) model.Recommendation {
	if cfg.ForcedSell(set) {
		return model.Sell
	}
	switch {
	case total >= cfg.BuyAt:
		return model.Buy
	case total >= cfg.HoldAt:
		return model.Hold
	default:
		return model.Sell
	}
}
