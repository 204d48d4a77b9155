package types

import "time"

// LeaseApplication is the persisted application row. The lease engine never
// reads it directly; LeaseService assembles a RentalSituation from the
// aggregate (application + property + applicants).
type LeaseApplication struct {
	ID           string        `db:"id"`
	PropertyID   string        `db:"property_id"`
	TenantUserID string        `db:"tenant_user_id"`
	Composition  Composition   `db:"composition"`
	CoupleStatus *CoupleStatus `db:"couple_status"`
	Requested    *LeaseRequest `db:"requested_lease"`

	RentExcludingCharges float64  `db:"rent_excluding_charges"`
	Charges              []byte   `db:"charges"` // jsonb, legacy polymorphic shape
	DepositOverride      *float64 `db:"deposit_override"`
	DurationOverride     *int     `db:"duration_override"`
	PaymentDay           int      `db:"payment_day"`
	PaymentMethod        string   `db:"payment_method"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Applicant struct {
	ID            string     `db:"id"`
	ApplicationID string     `db:"application_id"`
	FullName      string     `db:"full_name"`
	BirthDate     *time.Time `db:"birth_date"`
	BirthPlace    *string    `db:"birth_place"`
	JobType       JobType    `db:"job_type"`
	Position      int        `db:"position"`
}

type Property struct {
	ID          string   `db:"id"`
	OwnerUserID string   `db:"owner_user_id"`
	Address     string   `db:"address"`
	AddressExt  *string  `db:"address_ext"`
	City        string   `db:"city"`
	ZipCode     string   `db:"zip_code"`
	Furnished   bool     `db:"furnished"`
	ZoneTension bool     `db:"zone_tension"`
	RefRent     *float64 `db:"reference_rent"`
	RefRentUp   *float64 `db:"reference_rent_increased"`
	LegalRegime string   `db:"legal_regime"`
	Amenities   []string `db:"amenities"` // jsonb array

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ApplicationAggregate is the flat read model LeaseService works from,
// replacing the nested-include query graph of the legacy schema.
type ApplicationAggregate struct {
	Application *LeaseApplication
	Property    *Property
	Applicants  []*Applicant
}
