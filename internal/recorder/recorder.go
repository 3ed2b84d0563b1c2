package recorder

import "B3Advisor/internal/model"

// AnalysisRecord is one freshly computed analysis (cache hits are not
// recorded; they would only duplicate the originating row).
type AnalysisRecord struct {
	Ticker         string
	AssetClass     model.AssetClass
	Profile        model.Profile
	Price          *float64
	TotalScore     float64
	MaxScore       int
	Recommendation model.Recommendation
}

// Recorder persists analysis history.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
