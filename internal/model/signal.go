package model

// ScoreResult is the output of the scoring engine for one indicator set.
type ScoreResult struct {
	TotalScore float64
	// MaxScore is the fixed per-asset-class reporting ceiling. It is part of
	// the class configuration, never recomputed from the rule table (bonus
	// rules can push TotalScore past the nominal rule sum).
	MaxScore       int
	Explanations   []string // matched-rule labels, first-declared-first-reported
	Recommendation Recommendation
}
