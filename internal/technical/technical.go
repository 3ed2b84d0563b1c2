// Package technical scores the optional chart-based bonus signals. The
// scorer is best-effort: any failure degrades to zero bonus and never fails
// the analysis request.
package technical

import "context"

// Signals are the two bounded bonus conditions, each worth a fixed extra
// weight on top of the fundamental score.
type Signals struct {
	Oversold         bool // RSI(14) below 30
	AboveLongAverage bool // price above the 200-day moving average
}

// Scorer evaluates the technical signals for a ticker.
type Scorer interface {
	Signals(ctx context.Context, ticker string) (Signals, error)
	Name() string
}

// BonusWeight is the score contribution of each true signal.
const BonusWeight = 0.5

// Bonus converts signals to their total score contribution.
func (s Signals) Bonus() float64 {
	var bonus float64
	if s.Oversold {
		bonus += BonusWeight
	}
	if s.AboveLongAverage {
		bonus += BonusWeight
	}
	return bonus
}
