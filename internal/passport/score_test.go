package passport

import (
	"testing"

	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullChecklist(set int) []bool {
	checklist := make([]bool, 5)
	for i := 0; i < set; i++ {
		checklist[i] = true
	}
	return checklist
}

// Worked example: verifiedMonths=6, total=12, verified=12, one verified
// review at 3.0, completeness 80% -> regularity 50, badge 35, tenure 20,
// reviews 100, global 55, confidence HIGH.
func TestComputeScoreWorkedExample(t *testing.T) {
	profile := &types.TenantTrustProfile{
		VerifiedMonths:       6,
		TotalRentalMonths:    12,
		VerifiedRentalMonths: 12,
		Reviews: []types.ReviewSignal{
			{CompositeScore: 3.0, IsVerified: true},
		},
		Checklist: fullChecklist(4),
	}

	score := ComputeScore(profile)

	assert.Equal(t, 50.0, score.RegularityRate)
	assert.Equal(t, 35.0, score.PaymentBadge)
	assert.Equal(t, 20.0, score.Tenure)
	assert.Equal(t, 100.0, score.Reviews)
	assert.Equal(t, 80.0, score.Completeness)
	assert.Equal(t, 55, score.Global)
	assert.Equal(t, types.ConfidenceHigh, score.Confidence)
}

func TestBadgeScoreZeroBelowThreeVerifiedMonths(t *testing.T) {
	for _, months := range []int{0, 1, 2} {
		profile := &types.TenantTrustProfile{
			VerifiedMonths:  months,
			PunctualityRate: utils.Float64Ptr(100),
		}

		score := ComputeScore(profile)
		assert.Zero(t, score.PaymentBadge, "verifiedMonths=%d", months)
	}
}

func TestBadgeScoreCappedAt100(t *testing.T) {
	profile := &types.TenantTrustProfile{
		VerifiedMonths:       60,
		TotalRentalMonths:    60,
		VerifiedRentalMonths: 60,
	}

	score := ComputeScore(profile)
	assert.Equal(t, 100.0, score.PaymentBadge)
}

func TestRegularityRateFallbacks(t *testing.T) {
	t.Run("derived from history", func(t *testing.T) {
		score := ComputeScore(&types.TenantTrustProfile{
			VerifiedMonths:    6,
			TotalRentalMonths: 24,
			PunctualityRate:   utils.Float64Ptr(99), // ignored once history exists
		})
		assert.Equal(t, 25.0, score.RegularityRate)
	})

	t.Run("raw punctuality without history", func(t *testing.T) {
		score := ComputeScore(&types.TenantTrustProfile{
			VerifiedMonths:  6,
			PunctualityRate: utils.Float64Ptr(90),
		})
		assert.Equal(t, 90.0, score.RegularityRate)
	})

	t.Run("nothing known", func(t *testing.T) {
		score := ComputeScore(&types.TenantTrustProfile{VerifiedMonths: 6})
		assert.Zero(t, score.RegularityRate)
	})
}

func TestTenureScoreZeroTotalMonths(t *testing.T) {
	score := ComputeScore(&types.TenantTrustProfile{})
	assert.Zero(t, score.Tenure)
}

func TestTenureScoreCapsAtFiveYears(t *testing.T) {
	capped := ComputeScore(&types.TenantTrustProfile{TotalRentalMonths: 60, VerifiedRentalMonths: 60})
	longer := ComputeScore(&types.TenantTrustProfile{TotalRentalMonths: 120, VerifiedRentalMonths: 120})

	assert.Equal(t, capped.Tenure, longer.Tenure)
	assert.Equal(t, 100.0, capped.Tenure)
}

func TestReviewsScoreWeighting(t *testing.T) {
	// Verified 3.0 (norm 100, weight 2) + unverified 1.0 (norm 0, weight 1)
	// -> 200/3.
	score := ComputeScore(&types.TenantTrustProfile{
		Reviews: []types.ReviewSignal{
			{CompositeScore: 3.0, IsVerified: true},
			{CompositeScore: 1.0, IsVerified: false},
		},
	})

	assert.InDelta(t, 200.0/3.0, score.Reviews, 1e-9)
}

func TestReviewsScoreEmpty(t *testing.T) {
	score := ComputeScore(&types.TenantTrustProfile{})
	assert.Zero(t, score.Reviews)
}

// Global score must not decrease when any sub-score input improves with the
// rest held fixed.
func TestGlobalScoreMonotonic(t *testing.T) {
	base := &types.TenantTrustProfile{
		VerifiedMonths:       6,
		TotalRentalMonths:    24,
		VerifiedRentalMonths: 12,
		Reviews:              []types.ReviewSignal{{CompositeScore: 2.0, IsVerified: true}},
		Checklist:            fullChecklist(2),
	}
	baseline := ComputeScore(base).Global

	better := *base
	better.VerifiedMonths = 12
	assert.GreaterOrEqual(t, ComputeScore(&better).Global, baseline)

	better = *base
	better.TotalRentalMonths = 48
	better.VerifiedRentalMonths = 24
	assert.GreaterOrEqual(t, ComputeScore(&better).Global, baseline)

	better = *base
	better.Reviews = []types.ReviewSignal{{CompositeScore: 3.0, IsVerified: true}}
	assert.GreaterOrEqual(t, ComputeScore(&better).Global, baseline)

	better = *base
	better.Checklist = fullChecklist(5)
	assert.GreaterOrEqual(t, ComputeScore(&better).Global, baseline)
}

func TestConfidenceLevels(t *testing.T) {
	tests := []struct {
		name    string
		profile types.TenantTrustProfile
		want    types.ConfidenceLevel
	}{
		{
			"all gates hold",
			types.TenantTrustProfile{
				VerifiedMonths:       3,
				VerifiedRentalMonths: 6,
				Reviews:              []types.ReviewSignal{{CompositeScore: 2, IsVerified: true}},
			},
			types.ConfidenceHigh,
		},
		{
			"no gates hold",
			types.TenantTrustProfile{
				VerifiedMonths:       2,
				VerifiedRentalMonths: 5,
				Reviews:              []types.ReviewSignal{{CompositeScore: 3, IsVerified: false}},
			},
			types.ConfidenceLow,
		},
		{
			"one gate holds",
			types.TenantTrustProfile{VerifiedMonths: 3},
			types.ConfidenceMedium,
		},
		{
			"two gates hold",
			types.TenantTrustProfile{VerifiedMonths: 3, VerifiedRentalMonths: 6},
			types.ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ComputeScore(&tt.profile)
			require.Equal(t, tt.want, score.Confidence)
		})
	}
}

func TestGlobalScoreBounds(t *testing.T) {
	maxed := ComputeScore(&types.TenantTrustProfile{
		VerifiedMonths:       48,
		TotalRentalMonths:    60,
		VerifiedRentalMonths: 60,
		Reviews:              []types.ReviewSignal{{CompositeScore: 3, IsVerified: true}},
		Checklist:            fullChecklist(5),
	})
	assert.LessOrEqual(t, maxed.Global, 100)

	empty := ComputeScore(&types.TenantTrustProfile{})
	assert.GreaterOrEqual(t, empty.Global, 0)
}
