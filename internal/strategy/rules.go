package strategy

import "B3Advisor/internal/model"

// Rule is one weighted scoring criterion over an indicator set. Rules are
// order-insensitive for the total but their declaration order fixes the
// explanation order. A predicate over an absent (nil) indicator never
// matches.
type Rule struct {
	Name      string
	Weight    float64
	Label     string // explanation appended when the rule matches
	FailLabel string // optional explanation appended when it does not
	Match     func(s *model.IndicatorSet) bool
}

// classConfig is the fixed per-asset-class scoring configuration:
// rule table, hard sell overrides, recommendation thresholds, and the
// reporting ceiling.
type classConfig struct {
	// MaxScore is the reporting ceiling. It is a fixed constant of the class,
	// not the sum of rule weights (the technical bonus is additive on top).
	MaxScore      int
	BuyAt         float64
	HoldAt        float64
	Rules         []Rule
	ForcedSell    func(s *model.IndicatorSet) bool
	TechFailLabel string
}

var equityConfig = classConfig{
	MaxScore: 10,
	BuyAt:    8.5,
	HoldAt:   6,
	Rules: []Rule{
		{
			Name: "pl", Weight: 1.5,
			Label:     "✅ P/L em faixa ideal (5-15)",
			FailLabel: "⚠️ P/L fora da faixa ideal",
			Match: func(s *model.IndicatorSet) bool {
				return s.PriceEarnings != nil && *s.PriceEarnings >= 5 && *s.PriceEarnings <= 15
			},
		},
		{
			Name: "roe", Weight: 1,
			Label: "✅ ROE acima de 10%",
			Match: func(s *model.IndicatorSet) bool {
				return s.ROE != nil && *s.ROE > 10
			},
		},
		{
			Name: "dividend_yield", Weight: 1,
			Label: "✅ Dividend Yield acima de 4%",
			Match: func(s *model.IndicatorSet) bool {
				return s.DividendYield != nil && *s.DividendYield > 4
			},
		},
		{
			Name: "ev_ebitda", Weight: 1,
			Label: "✅ EV/EBITDA saudável (< 8)",
			Match: func(s *model.IndicatorSet) bool {
				return s.EVEBITDA != nil && *s.EVEBITDA > 0 && *s.EVEBITDA < 8
			},
		},
		{
			Name: "net_margin", Weight: 1,
			Label: "✅ Margem Líquida maior que 10%",
			Match: func(s *model.IndicatorSet) bool {
				return s.NetMargin != nil && *s.NetMargin > 10
			},
		},
		{
			Name: "debt_to_equity", Weight: 1,
			Label: "✅ Dívida/Patrimônio saudável (< 1)",
			Match: func(s *model.IndicatorSet) bool {
				// zero debt counts as healthy
				return s.DebtToEquity != nil && *s.DebtToEquity >= 0 && *s.DebtToEquity < 1
			},
		},
		{
			Name: "roic", Weight: 1,
			Label: "✅ ROIC acima de 8%",
			Match: func(s *model.IndicatorSet) bool {
				return s.ROIC != nil && *s.ROIC > 8
			},
		},
		{
			Name: "earnings_growth", Weight: 0.5,
			Label: "✅ Crescimento de receita acima de 5%",
			Match: func(s *model.IndicatorSet) bool {
				return s.EarningsGrowth != nil && *s.EarningsGrowth > 0.05
			},
		},
	},
	// Valuation hard ceiling: an equity trading above 60x earnings is a sell
	// no matter how well the other indicators score.
	ForcedSell: func(s *model.IndicatorSet) bool {
		return s.PriceEarnings != nil && *s.PriceEarnings > 60
	},
	TechFailLabel: "⚠️ Erro na análise técnica",
}

var fiiConfig = classConfig{
	MaxScore: 8,
	BuyAt:    5.5,
	HoldAt:   3.5,
	Rules: []Rule{
		{
			Name: "dividend_yield", Weight: 1.5,
			Label: "✅ Dividend Yield acima de 8%",
			Match: func(s *model.IndicatorSet) bool {
				return s.DividendYield != nil && *s.DividendYield > 8
			},
		},
		{
			Name: "p_vp", Weight: 1,
			Label: "✅ P/VP abaixo ou igual a 1 (descontado)",
			Match: func(s *model.IndicatorSet) bool {
				return s.PriceToBook != nil && *s.PriceToBook > 0 && *s.PriceToBook <= 1
			},
		},
		{
			Name: "cap_rate", Weight: 1,
			Label: "✅ Cap Rate acima de 7%",
			Match: func(s *model.IndicatorSet) bool {
				return s.CapRate != nil && *s.CapRate > 7
			},
		},
		{
			Name: "vacancy", Weight: 1,
			Label: "✅ Vacância abaixo de 10%",
			Match: func(s *model.IndicatorSet) bool {
				// zero vacancy is the best case, so present-but-zero matches
				return s.Vacancy != nil && *s.Vacancy < 10
			},
		},
		{
			Name: "liquidity", Weight: 0.75,
			Label: "✅ Boa liquidez média",
			Match: func(s *model.IndicatorSet) bool {
				return s.AvgLiquidity != nil && *s.AvgLiquidity > 500
			},
		},
		{
			Name: "dividend_history", Weight: 0.75,
			Label: "✅ Histórico de dividendos acima de R$0,90",
			Match: func(s *model.IndicatorSet) bool {
				return s.DividendPerShare != nil && *s.DividendPerShare > 0.9
			},
		},
	},
	// A fund yielding under 5%, with a zero cap rate, or with vacancy above
	// 25% is a sell regardless of score. An absent cap rate does not trigger
	// the zero check.
	ForcedSell: func(s *model.IndicatorSet) bool {
		if s.DividendYield != nil && *s.DividendYield > 0 && *s.DividendYield < 5 {
			return true
		}
		if s.CapRate != nil && *s.CapRate == 0 {
			return true
		}
		if s.Vacancy != nil && *s.Vacancy > 25 {
			return true
		}
		return false
	},
	TechFailLabel: "⚠️ Erro ao obter dados técnicos",
}

// configFor returns the fixed configuration for an asset class.
func configFor(class model.AssetClass) classConfig {
	if class == model.AssetFII {
		return fiiConfig
	}
	return equityConfig
}
