package passport

import (
	"math"
	"time"

	"coridor/pkg/types"
)

// Component weights of the global score.
const (
	weightPaymentBadge = 0.40
	weightTenure       = 0.20
	weightReviews      = 0.25
	weightCompleteness = 0.15
)

// Verification gates behind the confidence level.
const (
	badgeMinVerifiedMonths      = 3
	confidenceMinVerifiedRental = 6
)

// ComputeScore combines the four weighted sub-scores into a 0-100 global
// score plus a confidence level. Pure: everything it needs is on the input
// profile, hidden history already excluded upstream.
func ComputeScore(profile *types.TenantTrustProfile) *types.TrustScore {
	regularity := regularityRate(profile)

	badge := paymentBadgeScore(profile.VerifiedMonths, regularity)
	tenure := tenureScore(profile.TotalRentalMonths, profile.VerifiedRentalMonths)
	reviews := reviewsScore(profile.Reviews)
	completeness := completenessScore(profile.Checklist)

	global := badge*weightPaymentBadge +
		tenure*weightTenure +
		reviews*weightReviews +
		completeness*weightCompleteness

	return &types.TrustScore{
		Global:         clampScore(int(math.Round(global))),
		PaymentBadge:   badge,
		Tenure:         tenure,
		Reviews:        reviews,
		Completeness:   completeness,
		RegularityRate: regularity,
		Confidence:     confidenceLevel(profile),
		ComputedAt:     time.Now().UTC(),
	}
}

// regularityRate is derived, not raw: with any rental history it is the
// verified-payment share of total months; without history it falls back to
// the raw punctuality measurement, and to 0 when that is absent too.
func regularityRate(profile *types.TenantTrustProfile) float64 {
	if profile.TotalRentalMonths > 0 {
		rate := float64(profile.VerifiedMonths) / float64(profile.TotalRentalMonths) * 100
		return math.Min(100, rate)
	}

	if profile.PunctualityRate != nil {
		return *profile.PunctualityRate
	}

	return 0
}

// paymentBadgeScore is 0 below three verified months, whatever the
// regularity rate. Above, two years of verified payments saturate the
// volume term.
func paymentBadgeScore(verifiedMonths int, regularity float64) float64 {
	if verifiedMonths < badgeMinVerifiedMonths {
		return 0
	}

	volume := float64(verifiedMonths) / 24 * 100
	return math.Min(100, volume*0.6+regularity*0.4)
}

// tenureScore caps the base at five years of history and discounts it by
// how much of that history is platform-verified.
func tenureScore(totalMonths, verifiedMonths int) float64 {
	base := math.Min(float64(totalMonths), 60) / 60 * 100

	var verifiedRatio float64
	if totalMonths > 0 {
		verifiedRatio = float64(verifiedMonths) / float64(totalMonths)
	}

	return base * (0.7 + 0.3*verifiedRatio)
}

// reviewsScore is the weighted mean of normalized composite scores, a
// verified review counting double. No reviews means 0.
func reviewsScore(reviews []types.ReviewSignal) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum, weights float64
	for _, review := range reviews {
		weight := 1.0
		if review.IsVerified {
			weight = 2.0
		}
		normalized := (review.CompositeScore - 1) / 2 * 100
		sum += normalized * weight
		weights += weight
	}

	return sum / weights
}

func completenessScore(checklist []bool) float64 {
	if len(checklist) == 0 {
		return 0
	}

	var set int
	for _, field := range checklist {
		if field {
			set++
		}
	}

	return float64(set) / float64(len(checklist)) * 100
}

// confidenceLevel counts the independent verification signals backing the
// score: HIGH needs all three, LOW means none holds.
func confidenceLevel(profile *types.TenantTrustProfile) types.ConfidenceLevel {
	signals := 0
	if profile.VerifiedMonths >= badgeMinVerifiedMonths {
		signals++
	}
	if profile.VerifiedRentalMonths >= confidenceMinVerifiedRental {
		signals++
	}
	if hasVerifiedReview(profile.Reviews) {
		signals++
	}

	switch signals {
	case 3:
		return types.ConfidenceHigh
	case 0:
		return types.ConfidenceLow
	default:
		return types.ConfidenceMedium
	}
}

func hasVerifiedReview(reviews []types.ReviewSignal) bool {
	for _, review := range reviews {
		if review.IsVerified {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
