package lease

import (
	"fmt"
	"strings"

	"coridor/internal/utils"
	"coridor/pkg/types"
)

// Default lease duration in months, per template.
var defaultDuration = map[types.LeaseTemplate]int{
	types.LeaseTemplateUnfurnishedStandard: 36,
	types.LeaseTemplateFurnishedStandard:   12,
	types.LeaseTemplateStudent:             9,
	types.LeaseTemplateMobility:            10,
}

// Legal cap on the security deposit, as a multiple of the monthly rent
// excluding charges. A mobility lease forbids a deposit entirely.
var depositMultiple = map[types.LeaseTemplate]float64{
	types.LeaseTemplateUnfurnishedStandard: 1,
	types.LeaseTemplateFurnishedStandard:   2,
	types.LeaseTemplateStudent:             2,
	types.LeaseTemplateMobility:            0,
}

const (
	mobilityMinMonths = 1
	mobilityMaxMonths = 10
)

// ClassifyTemplate resolves the contract template for a situation. The
// furnished flag dominates everything: an unfurnished property is always an
// unfurnished standard lease, whatever was requested. For furnished
// properties the explicit request wins, and the fallback is the furnished
// standard lease even when every applicant is a student.
func ClassifyTemplate(situation *types.RentalSituation) types.LeaseTemplate {
	if !situation.Property.Furnished {
		return types.LeaseTemplateUnfurnishedStandard
	}

	switch situation.Request {
	case types.LeaseRequestStudent:
		return types.LeaseTemplateStudent
	case types.LeaseRequestMobility:
		return types.LeaseTemplateMobility
	}

	// Carried over from the legacy engine: an explicit STUDENT request has
	// already returned above, so this branch never fires. Left untouched;
	// the precedence it documents is pinned in engine_test.go.
	if situation.Request == types.LeaseRequestStudent && allApplicantsStudents(situation.Applicants) {
		return types.LeaseTemplateStudent
	}

	return types.LeaseTemplateFurnishedStandard
}

func allApplicantsStudents(applicants []types.Applicant) bool {
	if len(applicants) == 0 {
		return false
	}
	for _, applicant := range applicants {
		if applicant.JobType != types.JobTypeStudent {
			return false
		}
	}
	return true
}

// DetermineSolidarity is flat on the couple's legal sub-status: married,
// PACS and concubinage all resolve to true. The sub-status travels through
// the data model for future differentiation but never changes the outcome.
func DetermineSolidarity(composition types.Composition) bool {
	return composition != types.CompositionSolo
}

// DeriveFinancials computes deposit, duration and rent breakdown for a
// classified template. An out-of-range mobility duration is a hard
// validation error, never clamped. A deposit override is ignored for
// mobility leases: the law forbids any deposit there and the cap cannot be
// overridden upward.
func DeriveFinancials(template types.LeaseTemplate, fin types.FinancialInputs) (types.LeaseFinancials, error) {
	duration := defaultDuration[template]
	if fin.DurationOverride != nil {
		duration = *fin.DurationOverride
		if template == types.LeaseTemplateMobility &&
			(duration < mobilityMinMonths || duration > mobilityMaxMonths) {
			return types.LeaseFinancials{}, types.NewValidationError("duration_months",
				"mobility lease duration must be within [%d,%d] months, got %d",
				mobilityMinMonths, mobilityMaxMonths, duration)
		}
	}

	deposit := fin.RentExcludingCharges * depositMultiple[template]
	if fin.DepositOverride != nil && template != types.LeaseTemplateMobility {
		deposit = *fin.DepositOverride
	}

	charges := NormalizeCharges(fin.Charges)

	return types.LeaseFinancials{
		DepositAmount:        utils.RoundFloat64(deposit, 2),
		DurationMonths:       duration,
		RentExcludingCharges: fin.RentExcludingCharges,
		Charges:              charges,
		TotalRent:            utils.RoundFloat64(fin.RentExcludingCharges+charges, 2),
		PaymentDay:           fin.PaymentDay,
		PaymentMethod:        fin.PaymentMethod,
	}, nil
}

// Generate derives the full renderable lease configuration for a situation.
// The output is a fresh derived view on every call; the application record
// remains the source of truth.
func Generate(situation *types.RentalSituation) (*types.LeaseConfig, error) {
	if err := validateSituation(situation); err != nil {
		return nil, err
	}

	template := ClassifyTemplate(situation)
	solidarity := DetermineSolidarity(situation.Composition)

	financials, err := DeriveFinancials(template, situation.Financials)
	if err != nil {
		return nil, err
	}

	parties := make([]types.LeaseParty, 0, len(situation.Applicants))
	for _, applicant := range situation.Applicants {
		parties = append(parties, types.LeaseParty{
			FullName:   applicant.FullName,
			BirthDate:  *applicant.BirthDate,
			BirthPlace: *applicant.BirthPlace,
			JobType:    applicant.JobType,
		})
	}

	return &types.LeaseConfig{
		Template:   template,
		Solidarity: solidarity,
		Clauses:    SelectClauses(template, solidarity, situation.Composition),
		Financials: financials,
		Property: types.LeasePropertyDetails{
			Address:     situation.Property.Address,
			AddressExt:  situation.Property.AddressExt,
			City:        situation.Property.City,
			ZipCode:     situation.Property.ZipCode,
			Furnished:   situation.Property.Furnished,
			ZoneTension: situation.Property.ZoneTension,
			LegalRegime: situation.Property.LegalRegime,
			Amenities:   situation.Property.Amenities,
		},
		Parties: parties,
	}, nil
}

// validateSituation enforces the legal completeness requirements. Every
// party must carry a birth date and birth place; the property needs an
// address. Absence aborts the whole generation, there is no partial result.
func validateSituation(situation *types.RentalSituation) error {
	if strings.TrimSpace(situation.Property.Address) == "" {
		return types.NewValidationError("property.address", "property address is required")
	}
	if strings.TrimSpace(situation.Property.City) == "" {
		return types.NewValidationError("property.city", "property city is required")
	}

	if len(situation.Applicants) == 0 {
		return types.NewValidationError("applicants", "at least one applicant is required")
	}

	for i, applicant := range situation.Applicants {
		field := fmt.Sprintf("applicants[%d]", i)
		if strings.TrimSpace(applicant.FullName) == "" {
			return types.NewValidationError(field+".full_name", "applicant full name is required")
		}
		if applicant.BirthDate == nil {
			return types.NewValidationError(field+".birth_date",
				"birth date is required for %s before a contract can be generated", applicant.FullName)
		}
		if applicant.BirthPlace == nil || strings.TrimSpace(*applicant.BirthPlace) == "" {
			return types.NewValidationError(field+".birth_place",
				"birth place is required for %s before a contract can be generated", applicant.FullName)
		}
	}

	return nil
}
