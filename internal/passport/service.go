package passport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/sirupsen/logrus"
)

// Store collaborators. The pgx-backed implementations live in
// internal/store; tests plug in in-memory fakes.

type ProfileSource interface {
	Profile(ctx context.Context, profileID string) (*types.TenantProfile, error)
}

type HistoryStore interface {
	Entry(ctx context.Context, entryID string) (*types.RentalHistoryEntry, error)
	EntriesByProfile(ctx context.Context, profileID string) ([]*types.RentalHistoryEntry, error)
	Create(ctx context.Context, entry *types.RentalHistoryEntry) error
	Update(ctx context.Context, entryID string, entry *types.RentalHistoryEntry) error
	Delete(ctx context.Context, entryID string) error
}

type ReviewStore interface {
	Review(ctx context.Context, reviewID string) (*types.LandlordReview, error)
	ReviewByEntry(ctx context.Context, entryID string) (*types.LandlordReview, error)
	ReviewsByProfile(ctx context.Context, profileID string) ([]*types.LandlordReview, error)
	Create(ctx context.Context, review *types.LandlordReview) error
	GrantConsent(ctx context.Context, reviewID string, at time.Time) error
}

type SettingsStore interface {
	Settings(ctx context.Context, profileID string) (*types.PassportSettings, error)
	Upsert(ctx context.Context, settings *types.PassportSettings) error
}

type OwnershipSource interface {
	CountOwnedBy(ctx context.Context, userID string) (int, error)
}

// Notifier dispatches fire-and-forget in-app events. The engine only emits;
// delivery is the collaborator's problem.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, body string) error
}

const reviewMinTenancyMonths = 3

type Service struct {
	logger    *logrus.Logger
	profiles  ProfileSource
	history   HistoryStore
	reviews   ReviewStore
	settings  SettingsStore
	ownership OwnershipSource
	notifier  Notifier
}

func NewService(
	logger *logrus.Logger,
	profiles ProfileSource,
	history HistoryStore,
	reviews ReviewStore,
	settings SettingsStore,
	ownership OwnershipSource,
	notifier Notifier,
) *Service {
	return &Service{
		logger:    logger,
		profiles:  profiles,
		history:   history,
		reviews:   reviews,
		settings:  settings,
		ownership: ownership,
		notifier:  notifier,
	}
}

// Score computes the tenant's private trust score from their current
// profile, non-hidden history and reviews.
func (s *Service) Score(ctx context.Context, profileID string) (*types.TrustScore, error) {
	trustProfile, err := s.buildTrustProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return ComputeScore(trustProfile), nil
}

// buildTrustProfile flattens store records into the scoring engine input.
// Hidden entries drop out entirely, along with their attached reviews.
func (s *Service) buildTrustProfile(ctx context.Context, profileID string) (*types.TenantTrustProfile, error) {
	profile, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load tenant profile: %w", err)
	}

	entries, err := s.history.EntriesByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load rental history: %w", err)
	}

	reviews, err := s.reviews.ReviewsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("load landlord reviews: %w", err)
	}

	now := time.Now()
	visibleEntries := make(map[string]bool, len(entries))
	var totalMonths, verifiedMonths int
	for _, entry := range entries {
		if entry.IsHidden {
			continue
		}
		visibleEntries[entry.ID] = true

		months := monthsBetween(entry.StartDate, entryEnd(entry, now))
		totalMonths += months
		if entry.Source == types.HistorySourcePlatform {
			verifiedMonths += months
		}
	}

	signals := make([]types.ReviewSignal, 0, len(reviews))
	for _, review := range reviews {
		if !visibleEntries[review.HistoryEntryID] {
			continue
		}
		signals = append(signals, types.ReviewSignal{
			CompositeScore: review.CompositeScore,
			IsVerified:     review.IsVerified,
		})
	}

	return &types.TenantTrustProfile{
		VerifiedMonths:       profile.VerifiedMonths,
		PunctualityRate:      profile.PunctualityRate,
		TotalRentalMonths:    totalMonths,
		VerifiedRentalMonths: verifiedMonths,
		Reviews:              signals,
		Checklist:            profile.CompletenessChecklist(),
	}, nil
}

// SubmitReview runs the NO_REVIEW -> REVIEWED transition on a history
// entry. Guards, in order: the reviewer owns the tenancy's property, the
// tenancy lasted at least three months, exactly the four fixed criteria are
// rated, and no review exists yet. Each failure is an explicit rejection,
// never silently ignored.
func (s *Service) SubmitReview(
	ctx context.Context,
	reviewerUserID, entryID string,
	ratings map[types.ReviewCriterion]int,
	comment *string,
) (*types.LandlordReview, error) {
	entry, err := s.history.Entry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("load history entry: %w", err)
	}

	if entry.OwnerUserID == nil || *entry.OwnerUserID != reviewerUserID {
		return nil, fmt.Errorf("reviewer %s does not own the tenancy's property: %w",
			reviewerUserID, types.ErrUnauthorized)
	}

	if monthsBetween(entry.StartDate, entryEnd(entry, time.Now())) < reviewMinTenancyMonths {
		return nil, types.NewValidationError("history_entry",
			"tenancy must have lasted at least %d months to be reviewed", reviewMinTenancyMonths)
	}

	if err := validateCriteria(ratings); err != nil {
		return nil, err
	}

	_, err = s.reviews.ReviewByEntry(ctx, entryID)
	if err == nil {
		return nil, types.NewValidationError("history_entry", "entry already has a review")
	}
	if !errors.Is(err, types.ErrReviewNotFound) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	var sum int
	scores := make([]*types.ReviewScore, 0, len(types.ReviewCriteria))
	for _, criterion := range types.ReviewCriteria {
		rating := ratings[criterion]
		sum += rating
		scores = append(scores, &types.ReviewScore{
			Criterion: criterion,
			Rating:    rating,
		})
	}

	review := &types.LandlordReview{
		HistoryEntryID: entryID,
		ProfileID:      entry.ProfileID,
		ReviewerUserID: reviewerUserID,
		CompositeScore: float64(sum) / float64(len(types.ReviewCriteria)),
		IsVerified:     entry.Source == types.HistorySourcePlatform,
		Comment:        comment,
		Scores:         scores,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.notifyTenant(ctx, entry.ProfileID, review)

	return review, nil
}

func validateCriteria(ratings map[types.ReviewCriterion]int) error {
	if len(ratings) != len(types.ReviewCriteria) {
		return types.NewValidationError("ratings",
			"exactly %d criteria must be rated, got %d", len(types.ReviewCriteria), len(ratings))
	}

	for _, criterion := range types.ReviewCriteria {
		rating, ok := ratings[criterion]
		if !ok {
			return types.NewValidationError("ratings", "missing criterion %s", criterion)
		}
		if rating < types.RatingNegative || rating > types.RatingPositive {
			return types.NewValidationError("ratings",
				"criterion %s must be rated between %d and %d, got %d",
				criterion, types.RatingNegative, types.RatingPositive, rating)
		}
	}

	return nil
}

// notifyTenant is fire and forget: a failed dispatch is logged, never
// surfaced to the reviewer.
func (s *Service) notifyTenant(ctx context.Context, profileID string, review *types.LandlordReview) {
	profile, err := s.profiles.Profile(ctx, profileID)
	if err != nil {
		s.logger.WithError(err).WithField("profile_id", profileID).
			Warn("skipping review notification, profile lookup failed")
		return
	}

	err = s.notifier.Notify(ctx, profile.UserID, "review_received",
		"New landlord review",
		fmt.Sprintf("A landlord left a review on your rental history (score %.2f/3). Consent to share it on your passport.", review.CompositeScore))
	if err != nil {
		s.logger.WithError(err).WithField("user_id", profile.UserID).
			Warn("review notification dispatch failed")
	}
}

// GrantConsent flips a review to shared. Only the reviewed tenant can
// consent.
func (s *Service) GrantConsent(ctx context.Context, tenantUserID, reviewID string) error {
	review, err := s.reviews.Review(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("load review: %w", err)
	}

	profile, err := s.profiles.Profile(ctx, review.ProfileID)
	if err != nil {
		return fmt.Errorf("load reviewed profile: %w", err)
	}

	if profile.UserID != tenantUserID {
		return fmt.Errorf("only the reviewed tenant may consent: %w", types.ErrUnauthorized)
	}

	if err := s.reviews.GrantConsent(ctx, reviewID, time.Now()); err != nil {
		return fmt.Errorf("grant consent: %w", err)
	}

	return nil
}

// AddHistoryEntry records a manual, tenant-declared tenancy. The source tag
// is forced: platform-verified entries only ever come from RecordSignedLease.
func (s *Service) AddHistoryEntry(ctx context.Context, profileID string, entry *types.RentalHistoryEntry) error {
	entry.ProfileID = profileID
	entry.Source = types.HistorySourceManual

	if entry.EndDate != nil && entry.EndDate.Before(entry.StartDate) {
		return types.NewValidationError("end_date", "end date precedes start date")
	}

	return s.history.Create(ctx, entry)
}

// UpdateHistoryEntry edits a manual entry. Platform-verified entries are
// immutable for the tenant.
func (s *Service) UpdateHistoryEntry(ctx context.Context, profileID, entryID string, entry *types.RentalHistoryEntry) error {
	existing, err := s.history.Entry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load history entry: %w", err)
	}

	if existing.ProfileID != profileID {
		return fmt.Errorf("entry belongs to another tenant: %w", types.ErrUnauthorized)
	}
	if existing.Source == types.HistorySourcePlatform {
		return types.NewValidationError("history_entry", "platform-verified entries cannot be edited")
	}

	entry.ProfileID = existing.ProfileID
	entry.Source = existing.Source
	return s.history.Update(ctx, entryID, entry)
}

func (s *Service) DeleteHistoryEntry(ctx context.Context, profileID, entryID string) error {
	existing, err := s.history.Entry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load history entry: %w", err)
	}

	if existing.ProfileID != profileID {
		return fmt.Errorf("entry belongs to another tenant: %w", types.ErrUnauthorized)
	}
	if existing.Source == types.HistorySourcePlatform {
		return types.NewValidationError("history_entry", "platform-verified entries cannot be deleted")
	}

	return s.history.Delete(ctx, entryID)
}

// SetEntryHidden toggles an entry's visibility. Hiding works on any source,
// platform-verified included: the tenant controls what their passport shows,
// not what exists.
func (s *Service) SetEntryHidden(ctx context.Context, profileID, entryID string, hidden bool) error {
	existing, err := s.history.Entry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("load history entry: %w", err)
	}

	if existing.ProfileID != profileID {
		return fmt.Errorf("entry belongs to another tenant: %w", types.ErrUnauthorized)
	}

	existing.IsHidden = hidden
	return s.history.Update(ctx, entryID, existing)
}

// RecordSignedLease creates the immutable platform-verified history entry
// when a lease is signed on the platform.
func (s *Service) RecordSignedLease(
	ctx context.Context,
	profileID string,
	property *types.Property,
	startDate time.Time,
	monthlyRent float64,
) (*types.RentalHistoryEntry, error) {
	entry := &types.RentalHistoryEntry{
		ProfileID:   profileID,
		Source:      types.HistorySourcePlatform,
		PropertyID:  utils.StringPtr(property.ID),
		OwnerUserID: utils.StringPtr(property.OwnerUserID),
		Address:     property.Address,
		City:        property.City,
		StartDate:   startDate,
		MonthlyRent: utils.Float64Ptr(monthlyRent),
	}

	if err := s.history.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("record signed lease: %w", err)
	}

	return entry, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings *types.PassportSettings) error {
	return s.settings.Upsert(ctx, settings)
}

// VisiblePassport builds the viewer-facing projection. It is nil unless the
// tenant enabled their passport AND the viewer owns at least one property.
// Sections come and go with their own toggles, reviews are filtered to
// consented ones, and the numeric score is never part of this view.
func (s *Service) VisiblePassport(ctx context.Context, profileID, viewerUserID string) (*types.VisiblePassport, error) {
	settings, err := s.settings.Settings(ctx, profileID)
	if err != nil {
		if errors.Is(err, types.ErrSettingsNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load passport settings: %w", err)
	}

	if !settings.IsEnabled {
		return nil, nil
	}

	owned, err := s.ownership.CountOwnedBy(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("check viewer ownership: %w", err)
	}
	if owned == 0 {
		return nil, nil
	}

	passport := &types.VisiblePassport{ProfileID: profileID}

	var profile *types.TenantProfile
	if settings.ShowPaymentBadge || settings.ShowFinancialSummary {
		profile, err = s.profiles.Profile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("load tenant profile: %w", err)
		}
	}

	var entries []*types.RentalHistoryEntry
	if settings.ShowRentalHistory || settings.ShowFinancialSummary {
		entries, err = s.history.EntriesByProfile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("load rental history: %w", err)
		}
	}

	if settings.ShowPaymentBadge {
		badge := &types.PaymentBadgeView{
			Active: profile.VerifiedMonths >= badgeMinVerifiedMonths,
		}
		if settings.ShowVerifiedMonths {
			badge.VerifiedMonths = utils.IntPtr(profile.VerifiedMonths)
		}
		passport.PaymentBadge = badge
	}

	if settings.ShowRentalHistory {
		views := make([]*types.HistoryEntryView, 0, len(entries))
		for _, entry := range entries {
			if entry.IsHidden {
				continue
			}
			views = append(views, &types.HistoryEntryView{
				City:      entry.City,
				Source:    entry.Source,
				StartDate: entry.StartDate,
				EndDate:   entry.EndDate,
			})
		}
		passport.RentalHistory = views
	}

	if settings.ShowLandlordReviews {
		reviews, err := s.reviews.ReviewsByProfile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("load landlord reviews: %w", err)
		}

		views := make([]*types.ReviewView, 0, len(reviews))
		for _, review := range reviews {
			if !review.TenantConsented {
				continue
			}
			views = append(views, &types.ReviewView{
				CompositeScore: review.CompositeScore,
				IsVerified:     review.IsVerified,
				Comment:        review.Comment,
				CreatedAt:      review.CreatedAt,
			})
		}
		passport.LandlordReviews = views
	}

	if settings.ShowFinancialSummary {
		passport.FinancialSummary = financialSummary(entries)
	}

	return passport, nil
}

func financialSummary(entries []*types.RentalHistoryEntry) *types.FinancialSummaryView {
	now := time.Now()
	summary := &types.FinancialSummaryView{}

	var rentSum float64
	var rentCount int
	for _, entry := range entries {
		if entry.IsHidden {
			continue
		}

		months := monthsBetween(entry.StartDate, entryEnd(entry, now))
		summary.TotalRentalMonths += months
		if entry.Source == types.HistorySourcePlatform {
			summary.VerifiedRentalMonths += months
		}

		if entry.MonthlyRent != nil {
			rentSum += *entry.MonthlyRent
			rentCount++
		}
	}

	if rentCount > 0 {
		summary.AverageRent = utils.Float64Ptr(utils.RoundFloat64(rentSum/float64(rentCount), 2))
	}

	return summary
}

// monthsBetween counts whole calendar months from start to end, clamped at
// zero.
func monthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}

	if months < 0 {
		return 0
	}
	return months
}

// entryEnd treats an open tenancy as running until now.
func entryEnd(entry *types.RentalHistoryEntry, now time.Time) time.Time {
	if entry.EndDate != nil {
		return *entry.EndDate
	}
	return now
}
