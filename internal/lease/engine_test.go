package lease

import (
	"testing"
	"time"

	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSituation() *types.RentalSituation {
	return &types.RentalSituation{
		Property: types.PropertyAttributes{
			Address:   "12 rue des Lilas",
			City:      "Lyon",
			ZipCode:   "69003",
			Furnished: true,
		},
		Composition: types.CompositionSolo,
		Request:     types.LeaseRequestDefault,
		Applicants: []types.Applicant{
			{
				FullName:   "Camille Moreau",
				BirthDate:  utils.TimePtr(time.Date(1994, 3, 18, 0, 0, 0, 0, time.UTC)),
				BirthPlace: utils.StringPtr("Lyon"),
				JobType:    types.JobTypeEmployed,
			},
		},
		Financials: types.FinancialInputs{
			RentExcludingCharges: 780,
			Charges:              []byte(`150`),
			PaymentDay:           5,
			PaymentMethod:        "transfer",
		},
	}
}

func TestClassifyTemplate(t *testing.T) {
	tests := []struct {
		name      string
		furnished bool
		request   types.LeaseRequest
		jobs      []types.JobType
		want      types.LeaseTemplate
	}{
		{"unfurnished ignores student request", false, types.LeaseRequestStudent, []types.JobType{types.JobTypeStudent}, types.LeaseTemplateUnfurnishedStandard},
		{"unfurnished ignores mobility request", false, types.LeaseRequestMobility, []types.JobType{types.JobTypeEmployed}, types.LeaseTemplateUnfurnishedStandard},
		{"unfurnished default", false, types.LeaseRequestDefault, []types.JobType{types.JobTypeEmployed}, types.LeaseTemplateUnfurnishedStandard},
		{"furnished explicit student", true, types.LeaseRequestStudent, []types.JobType{types.JobTypeEmployed}, types.LeaseTemplateStudent},
		{"furnished explicit mobility", true, types.LeaseRequestMobility, []types.JobType{types.JobTypeStudent}, types.LeaseTemplateMobility},
		{"furnished default", true, types.LeaseRequestDefault, []types.JobType{types.JobTypeEmployed}, types.LeaseTemplateFurnishedStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			situation := validSituation()
			situation.Property.Furnished = tt.furnished
			situation.Request = tt.request
			situation.Applicants = situation.Applicants[:0]
			for _, job := range tt.jobs {
				situation.Applicants = append(situation.Applicants, types.Applicant{JobType: job})
			}

			assert.Equal(t, tt.want, ClassifyTemplate(situation))
		})
	}
}

// Pins the latent all-students branch: a furnished property with a DEFAULT
// request classifies as furnished standard even when every applicant is a
// student. Only an explicit STUDENT request selects the student template.
func TestClassifyTemplateAllStudentsBranchNeverFires(t *testing.T) {
	situation := validSituation()
	situation.Property.Furnished = true
	situation.Request = types.LeaseRequestDefault
	situation.Applicants = []types.Applicant{
		{JobType: types.JobTypeStudent},
		{JobType: types.JobTypeStudent},
	}

	assert.Equal(t, types.LeaseTemplateFurnishedStandard, ClassifyTemplate(situation))
}

func TestDetermineSolidarity(t *testing.T) {
	assert.False(t, DetermineSolidarity(types.CompositionSolo))
	assert.True(t, DetermineSolidarity(types.CompositionCouple))
	assert.True(t, DetermineSolidarity(types.CompositionGroup))
}

func TestDeriveFinancialsDefaults(t *testing.T) {
	tests := []struct {
		template     types.LeaseTemplate
		wantDuration int
		wantDeposit  float64
	}{
		{types.LeaseTemplateUnfurnishedStandard, 36, 780},
		{types.LeaseTemplateFurnishedStandard, 12, 1560},
		{types.LeaseTemplateStudent, 9, 1560},
		{types.LeaseTemplateMobility, 10, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.template), func(t *testing.T) {
			fin, err := DeriveFinancials(tt.template, types.FinancialInputs{
				RentExcludingCharges: 780,
				Charges:              []byte(`150`),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantDuration, fin.DurationMonths)
			assert.Equal(t, tt.wantDeposit, fin.DepositAmount)
			assert.Equal(t, 930.0, fin.TotalRent)
		})
	}
}

func TestDeriveFinancialsMobilityDurationRange(t *testing.T) {
	for _, months := range []int{0, 11, 24, -2} {
		_, err := DeriveFinancials(types.LeaseTemplateMobility, types.FinancialInputs{
			RentExcludingCharges: 700,
			DurationOverride:     utils.IntPtr(months),
		})
		require.Error(t, err, "duration %d should be rejected", months)
		assert.True(t, types.IsValidation(err))
	}

	for _, months := range []int{1, 4, 10} {
		fin, err := DeriveFinancials(types.LeaseTemplateMobility, types.FinancialInputs{
			RentExcludingCharges: 700,
			DurationOverride:     utils.IntPtr(months),
		})
		require.NoError(t, err)
		assert.Equal(t, months, fin.DurationMonths)
	}
}

func TestDeriveFinancialsMobilityDepositForcedToZero(t *testing.T) {
	fin, err := DeriveFinancials(types.LeaseTemplateMobility, types.FinancialInputs{
		RentExcludingCharges: 700,
		DepositOverride:      utils.Float64Ptr(1400),
	})
	require.NoError(t, err)

	assert.Zero(t, fin.DepositAmount)
}

func TestDeriveFinancialsDepositOverride(t *testing.T) {
	fin, err := DeriveFinancials(types.LeaseTemplateFurnishedStandard, types.FinancialInputs{
		RentExcludingCharges: 780,
		DepositOverride:      utils.Float64Ptr(1000),
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, fin.DepositAmount)
}

func TestDeriveFinancialsDurationOverride(t *testing.T) {
	fin, err := DeriveFinancials(types.LeaseTemplateUnfurnishedStandard, types.FinancialInputs{
		RentExcludingCharges: 780,
		DurationOverride:     utils.IntPtr(48),
	})
	require.NoError(t, err)

	assert.Equal(t, 48, fin.DurationMonths)
}

func TestGenerateValidation(t *testing.T) {
	t.Run("missing birth date", func(t *testing.T) {
		situation := validSituation()
		situation.Applicants[0].BirthDate = nil

		_, err := Generate(situation)
		require.Error(t, err)
		assert.True(t, types.IsValidation(err))
	})

	t.Run("missing birth place", func(t *testing.T) {
		situation := validSituation()
		situation.Applicants[0].BirthPlace = nil

		_, err := Generate(situation)
		require.Error(t, err)
		assert.True(t, types.IsValidation(err))
	})

	t.Run("missing property address", func(t *testing.T) {
		situation := validSituation()
		situation.Property.Address = "  "

		_, err := Generate(situation)
		require.Error(t, err)
		assert.True(t, types.IsValidation(err))
	})

	t.Run("no applicants", func(t *testing.T) {
		situation := validSituation()
		situation.Applicants = nil

		_, err := Generate(situation)
		require.Error(t, err)
		assert.True(t, types.IsValidation(err))
	})
}

func TestGenerateFurnishedCouple(t *testing.T) {
	situation := validSituation()
	situation.Composition = types.CompositionCouple
	status := types.CoupleStatusConcubinage
	situation.CoupleStatus = &status

	config, err := Generate(situation)
	require.NoError(t, err)

	assert.Equal(t, types.LeaseTemplateFurnishedStandard, config.Template)
	assert.True(t, config.Solidarity)
	assert.Equal(t, clauseSolidarityStandard, config.Clauses.Solidarity)
	require.NotNil(t, config.Clauses.Preemption)
	assert.Equal(t, 1560.0, config.Financials.DepositAmount)
	assert.Equal(t, 930.0, config.Financials.TotalRent)
	require.Len(t, config.Parties, 1)
	assert.Equal(t, "Camille Moreau", config.Parties[0].FullName)
}

func TestGenerateStudentLeaseHasNoPreemption(t *testing.T) {
	situation := validSituation()
	situation.Request = types.LeaseRequestStudent

	config, err := Generate(situation)
	require.NoError(t, err)

	assert.Equal(t, types.LeaseTemplateStudent, config.Template)
	assert.Nil(t, config.Clauses.Preemption)
	assert.Equal(t, 9, config.Financials.DurationMonths)
}
