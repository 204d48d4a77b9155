package types

import "time"

type LeaseTemplate string

const (
	LeaseTemplateUnfurnishedStandard LeaseTemplate = "UNFURNISHED_STANDARD"
	LeaseTemplateFurnishedStandard   LeaseTemplate = "FURNISHED_STANDARD"
	LeaseTemplateStudent             LeaseTemplate = "STUDENT"
	LeaseTemplateMobility            LeaseTemplate = "MOBILITY"
)

type LeaseRequest string

const (
	LeaseRequestDefault  LeaseRequest = "DEFAULT"
	LeaseRequestStudent  LeaseRequest = "STUDENT"
	LeaseRequestMobility LeaseRequest = "MOBILITY"
)

type Composition string

const (
	CompositionSolo   Composition = "SOLO"
	CompositionCouple Composition = "COUPLE"
	CompositionGroup  Composition = "GROUP"
)

type CoupleStatus string

const (
	CoupleStatusMarried     CoupleStatus = "MARRIED"
	CoupleStatusPACS        CoupleStatus = "PACS"
	CoupleStatusConcubinage CoupleStatus = "CONCUBINAGE"
)

type JobType string

const (
	JobTypeStudent    JobType = "STUDENT"
	JobTypeEmployed   JobType = "EMPLOYED"
	JobTypeSelfEmploy JobType = "SELF_EMPLOYED"
	JobTypeRetired    JobType = "RETIRED"
	JobTypeUnemployed JobType = "UNEMPLOYED"
)

// PropertyAttributes is the slice of a Property the lease engine reads.
type PropertyAttributes struct {
	Address         string
	AddressExt      string
	City            string
	ZipCode         string
	Furnished       bool
	ZoneTension     bool
	ReferenceRent   *float64
	ReferenceRentUp *float64
	LegalRegime     string
	Amenities       []string
}

// FinancialInputs carries the applicant-supplied money fields. Charges is
// kept raw because legacy applications stored it as a number, a numeric
// string, or an {amount|value} object; lease.NormalizeCharges resolves it.
type FinancialInputs struct {
	RentExcludingCharges float64
	Charges              []byte
	DepositOverride      *float64
	DurationOverride     *int
	PaymentDay           int
	PaymentMethod        string
}

// RentalSituation is the immutable snapshot the lease engine classifies.
type RentalSituation struct {
	Property     PropertyAttributes
	Composition  Composition
	CoupleStatus *CoupleStatus
	Request      LeaseRequest
	Applicants   []Applicant
	Financials   FinancialInputs
}

type LeaseClauses struct {
	Solidarity  string  `json:"solidarity"`
	Termination string  `json:"termination"`
	Resolutory  string  `json:"resolutory"`
	Subletting  string  `json:"subletting"`
	Insurance   string  `json:"insurance"`
	Preemption  *string `json:"preemption"`
}

type LeaseFinancials struct {
	DepositAmount        float64 `json:"deposit_amount"`
	DurationMonths       int     `json:"duration_months"`
	RentExcludingCharges float64 `json:"rent_excluding_charges"`
	Charges              float64 `json:"charges"`
	TotalRent            float64 `json:"total_rent"`
	PaymentDay           int     `json:"payment_day"`
	PaymentMethod        string  `json:"payment_method"`
}

type LeaseParty struct {
	FullName   string    `json:"full_name"`
	BirthDate  time.Time `json:"birth_date"`
	BirthPlace string    `json:"birth_place"`
	JobType    JobType   `json:"job_type"`
}

type LeasePropertyDetails struct {
	Address     string   `json:"address"`
	AddressExt  string   `json:"address_ext,omitempty"`
	City        string   `json:"city"`
	ZipCode     string   `json:"zip_code"`
	Furnished   bool     `json:"furnished"`
	ZoneTension bool     `json:"zone_tension"`
	LegalRegime string   `json:"legal_regime,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

// LeaseConfig is a derived view, recomputed on every call. The originating
// application record stays authoritative; this is never written back.
type LeaseConfig struct {
	Template   LeaseTemplate        `json:"template"`
	Solidarity bool                 `json:"solidarity"`
	Clauses    LeaseClauses         `json:"clauses"`
	Financials LeaseFinancials      `json:"financials"`
	Property   LeasePropertyDetails `json:"property"`
	Parties    []LeaseParty         `json:"parties"`
}
