package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coridor/internal/passport"
	"coridor/internal/store"
	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	demoTenantUserID   = "demo-tenant-user"
	demoLandlordUserID = "demo-landlord-user"
)

// Demo provisions a small but complete dataset: a landlord with two
// properties, a tenant with platform and manual history, a consented
// review, enabled passport settings and a couple's lease application.
// Running it twice is a no-op.
func Demo(
	ctx context.Context,
	logger *logrus.Logger,
	profiles *store.ProfileRepository,
	properties *store.PropertyRepository,
	applications *store.ApplicationRepository,
	service *passport.Service,
) error {
	existing, err := profiles.ProfileByUser(ctx, demoTenantUserID)
	if err != nil && !errors.Is(err, types.ErrProfileNotFound) {
		return fmt.Errorf("check demo profile: %w", err)
	}
	if existing != nil {
		logger.Info("demo data already seeded, skipping")
		return nil
	}

	profile := &types.TenantProfile{
		UserID:              demoTenantUserID,
		VerifiedMonths:      6,
		HasIdentityDocument: true,
		HasIncomeProof:      true,
		HasEmployment:       true,
		HasGuarantor:        false,
		HasBio:              true,
		PhoneVerified:       true,
	}
	if err := profiles.Create(ctx, profile); err != nil {
		return fmt.Errorf("seed tenant profile: %w", err)
	}

	furnished := &types.Property{
		OwnerUserID: demoLandlordUserID,
		Address:     "12 rue des Lilas",
		City:        "Lyon",
		ZipCode:     "69003",
		Furnished:   true,
		ZoneTension: true,
		RefRent:     utils.Float64Ptr(13.5),
		RefRentUp:   utils.Float64Ptr(16.2),
		LegalRegime: "loi-1989",
		Amenities:   []string{"bed", "oven", "fridge", "dishes"},
	}
	if err := properties.Create(ctx, furnished); err != nil {
		return fmt.Errorf("seed furnished property: %w", err)
	}

	unfurnished := &types.Property{
		OwnerUserID: demoLandlordUserID,
		Address:     "4 avenue Jean Jaurès",
		City:        "Villeurbanne",
		ZipCode:     "69100",
		Furnished:   false,
		ZoneTension: false,
		LegalRegime: "loi-1989",
	}
	if err := properties.Create(ctx, unfurnished); err != nil {
		return fmt.Errorf("seed unfurnished property: %w", err)
	}

	now := time.Now()

	// Signed platform lease, still running after 14 months: long enough for
	// both the review guard and the verified-months confidence gate.
	entry, err := service.RecordSignedLease(ctx, profile.ID, furnished, now.AddDate(0, -14, 0), 780)
	if err != nil {
		return err
	}

	manual := &types.RentalHistoryEntry{
		Address:     "7 place du Marché",
		City:        "Grenoble",
		StartDate:   now.AddDate(-3, 0, 0),
		EndDate:     utils.TimePtr(now.AddDate(-1, -4, 0)),
		MonthlyRent: utils.Float64Ptr(640),
	}
	if err := service.AddHistoryEntry(ctx, profile.ID, manual); err != nil {
		return fmt.Errorf("seed manual history entry: %w", err)
	}

	if err := service.UpdateSettings(ctx, &types.PassportSettings{
		ProfileID:            profile.ID,
		IsEnabled:            true,
		ShowPaymentBadge:     true,
		ShowRentalHistory:    true,
		ShowLandlordReviews:  true,
		ShowFinancialSummary: true,
		ShowVerifiedMonths:   true,
	}); err != nil {
		return fmt.Errorf("seed passport settings: %w", err)
	}

	review, err := service.SubmitReview(ctx, demoLandlordUserID, entry.ID, map[types.ReviewCriterion]int{
		types.CriterionPaymentRegularity: types.RatingPositive,
		types.CriterionPropertyCondition: types.RatingPositive,
		types.CriterionCommunication:     types.RatingNeutral,
		types.CriterionWouldRecommend:    types.RatingPositive,
	}, utils.StringPtr("Locataire sérieux, loyers toujours à l'heure."))
	if err != nil {
		return fmt.Errorf("seed landlord review: %w", err)
	}

	if err := service.GrantConsent(ctx, demoTenantUserID, review.ID); err != nil {
		return fmt.Errorf("seed review consent: %w", err)
	}

	application := &types.LeaseApplication{
		PropertyID:           furnished.ID,
		TenantUserID:         demoTenantUserID,
		Composition:          types.CompositionCouple,
		CoupleStatus:         coupleStatusPtr(types.CoupleStatusPACS),
		RentExcludingCharges: 780,
		Charges:              []byte(`"150"`), // legacy numeric-string shape
		PaymentDay:           5,
		PaymentMethod:        "transfer",
	}
	applicants := []*types.Applicant{
		{
			FullName:   "Camille Moreau",
			BirthDate:  utils.TimePtr(time.Date(1994, 3, 18, 0, 0, 0, 0, time.UTC)),
			BirthPlace: utils.StringPtr("Lyon"),
			JobType:    types.JobTypeEmployed,
		},
		{
			FullName:   "Nadia Benali",
			BirthDate:  utils.TimePtr(time.Date(1996, 11, 2, 0, 0, 0, 0, time.UTC)),
			BirthPlace: utils.StringPtr("Grenoble"),
			JobType:    types.JobTypeStudent,
		},
	}
	if err := applications.Create(ctx, application, applicants); err != nil {
		return fmt.Errorf("seed lease application: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"profile_id":     profile.ID,
		"application_id": application.ID,
	}).Info("demo data seeded")

	return nil
}

func coupleStatusPtr(s types.CoupleStatus) *types.CoupleStatus {
	return &s
}
