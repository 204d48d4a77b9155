package types

import "time"

type HistorySource string

const (
	// HistorySourcePlatform entries are created automatically when a lease is
	// signed on the platform. They cannot be edited or deleted by the tenant.
	HistorySourcePlatform HistorySource = "PLATFORM_VERIFIED"
	HistorySourceManual   HistorySource = "MANUAL"
)

type ReviewCriterion string

const (
	CriterionPaymentRegularity ReviewCriterion = "PAYMENT_REGULARITY"
	CriterionPropertyCondition ReviewCriterion = "PROPERTY_CONDITION"
	CriterionCommunication     ReviewCriterion = "COMMUNICATION"
	CriterionWouldRecommend    ReviewCriterion = "WOULD_RECOMMEND"
)

// ReviewCriteria is the closed set a review must cover, no more, no fewer.
var ReviewCriteria = []ReviewCriterion{
	CriterionPaymentRegularity,
	CriterionPropertyCondition,
	CriterionCommunication,
	CriterionWouldRecommend,
}

const (
	RatingNegative = 1
	RatingNeutral  = 2
	RatingPositive = 3
)

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "LOW"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceHigh   ConfidenceLevel = "HIGH"
)

type TenantProfile struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`

	// Count of months with a platform-confirmed rent payment.
	VerifiedMonths int `db:"verified_months"`
	// Raw punctuality measurement, only used when no rental history exists.
	PunctualityRate *float64 `db:"punctuality_rate"`

	HasIdentityDocument bool `db:"has_identity_document"`
	HasIncomeProof      bool `db:"has_income_proof"`
	HasEmployment       bool `db:"has_employment"`
	HasGuarantor        bool `db:"has_guarantor"`
	HasBio              bool `db:"has_bio"`
	PhoneVerified       bool `db:"phone_verified"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CompletenessChecklist flattens the fixed profile checklist the
// completeness sub-score is computed over.
func (p *TenantProfile) CompletenessChecklist() []bool {
	return []bool{
		p.HasIdentityDocument,
		p.HasIncomeProof,
		p.HasEmployment,
		p.HasGuarantor,
		p.HasBio,
		p.PhoneVerified,
	}
}

type RentalHistoryEntry struct {
	ID          string        `db:"id"`
	ProfileID   string        `db:"profile_id"`
	Source      HistorySource `db:"source"`
	PropertyID  *string       `db:"property_id"`
	OwnerUserID *string       `db:"owner_user_id"`
	Address     string        `db:"address"`
	City        string        `db:"city"`
	StartDate   time.Time     `db:"start_date"`
	EndDate     *time.Time    `db:"end_date"`
	MonthlyRent *float64      `db:"monthly_rent"`
	IsHidden    bool          `db:"is_hidden"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

type ReviewScore struct {
	ID        string          `db:"id"`
	ReviewID  string          `db:"review_id"`
	Criterion ReviewCriterion `db:"criterion"`
	Rating    int             `db:"rating"`
}

type LandlordReview struct {
	ID             string  `db:"id"`
	HistoryEntryID string  `db:"history_entry_id"`
	ProfileID      string  `db:"profile_id"`
	ReviewerUserID string  `db:"reviewer_user_id"`
	CompositeScore float64 `db:"composite_score"`
	IsVerified     bool    `db:"is_verified"`
	Comment        *string `db:"comment"`

	// A review becomes visible to third parties only after the reviewed
	// tenant consents. It counts toward their private score regardless.
	TenantConsented bool       `db:"tenant_consented"`
	ConsentedAt     *time.Time `db:"consented_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Scores []*ReviewScore `db:"-"`
}

type PassportSettings struct {
	ProfileID string `db:"profile_id"`
	IsEnabled bool   `db:"is_enabled"`

	ShowPaymentBadge     bool `db:"show_payment_badge"`
	ShowRentalHistory    bool `db:"show_rental_history"`
	ShowLandlordReviews  bool `db:"show_landlord_reviews"`
	ShowFinancialSummary bool `db:"show_financial_summary"`
	ShowVerifiedMonths   bool `db:"show_verified_months"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ReviewSignal is the per-review slice the scoring engine consumes.
type ReviewSignal struct {
	CompositeScore float64
	IsVerified     bool
}

// TenantTrustProfile is the scoring engine input: flat, pre-derived, with
// hidden history entries already excluded.
type TenantTrustProfile struct {
	VerifiedMonths       int
	PunctualityRate      *float64
	TotalRentalMonths    int
	VerifiedRentalMonths int
	Reviews              []ReviewSignal
	Checklist            []bool
}

type TrustScore struct {
	Global         int             `json:"global"`
	PaymentBadge   float64         `json:"payment_badge"`
	Tenure         float64         `json:"tenure"`
	Reviews        float64         `json:"reviews"`
	Completeness   float64         `json:"completeness"`
	RegularityRate float64         `json:"regularity_rate"`
	Confidence     ConfidenceLevel `json:"confidence"`
	ComputedAt     time.Time       `json:"computed_at"`
}

// VisiblePassport is the viewer-facing projection. The numeric trust score
// is deliberately absent: it is private to the tenant under every settings
// combination.
type VisiblePassport struct {
	ProfileID        string                `json:"profile_id"`
	PaymentBadge     *PaymentBadgeView     `json:"payment_badge,omitempty"`
	RentalHistory    []*HistoryEntryView   `json:"rental_history,omitempty"`
	LandlordReviews  []*ReviewView         `json:"landlord_reviews,omitempty"`
	FinancialSummary *FinancialSummaryView `json:"financial_summary,omitempty"`
}

type PaymentBadgeView struct {
	Active         bool `json:"active"`
	VerifiedMonths *int `json:"verified_months,omitempty"`
}

type HistoryEntryView struct {
	City      string        `json:"city"`
	Source    HistorySource `json:"source"`
	StartDate time.Time     `json:"start_date"`
	EndDate   *time.Time    `json:"end_date,omitempty"`
}

type ReviewView struct {
	CompositeScore float64   `json:"composite_score"`
	IsVerified     bool      `json:"is_verified"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type FinancialSummaryView struct {
	TotalRentalMonths    int      `json:"total_rental_months"`
	VerifiedRentalMonths int      `json:"verified_rental_months"`
	AverageRent          *float64 `json:"average_rent,omitempty"`
}

type Notification struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Kind      string     `db:"kind"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	ReadAt    *time.Time `db:"read_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ExportDocument is the one wire-format boundary of the subsystem: a
// one-shot byte payload, not a protocol.
type ExportDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}
