package strategy

import "B3Advisor/internal/model"

// Profile-specific recommendation thresholds. They apply to the raw score
// regardless of asset class, and the conservative pair is tighter than the
// aggressive one.
var profileThresholds = map[model.Profile]struct{ BuyAt, HoldAt float64 }{
	model.ProfileConservative: {BuyAt: 8, HoldAt: 6},
	model.ProfileAggressive:   {BuyAt: 6.5, HoldAt: 4.5},
}

// AdjustForProfile remaps a baseline recommendation to the caller's risk
// profile by re-deriving the tier from the raw score alone. Moderate (and
// any unrecognized profile) is the identity mapping.
//
// The hard sell overrides are NOT re-checked here, so a non-moderate
// profile can in principle loosen an override-forced sell purely by score.
// That mirrors the long-standing production behavior; see DESIGN.md.
func AdjustForProfile(baseline model.Recommendation, total float64, profile model.Profile) model.Recommendation {
	t, ok := profileThresholds[profile]
	if !ok {
		return baseline
	}
	switch {
	case total >= t.BuyAt:
		return model.Buy
	case total >= t.HoldAt:
		return model.Hold
	default:
		return model.Sell
	}
}
