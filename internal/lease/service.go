package lease

import (
	"context"
	"fmt"

	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/sirupsen/logrus"
)

// ApplicationSource reads one application aggregate by id. The store package
// provides the pgx-backed implementation; tests use an in-memory fake.
type ApplicationSource interface {
	Application(ctx context.Context, applicationID string) (*types.ApplicationAggregate, error)
}

type Service struct {
	logger *logrus.Logger
	apps   ApplicationSource
}

func NewService(logger *logrus.Logger, apps ApplicationSource) *Service {
	return &Service{logger: logger, apps: apps}
}

// Generate loads the application aggregate and derives its lease
// configuration. Nothing is persisted: the caller renders the result.
func (s *Service) Generate(ctx context.Context, applicationID string) (*types.LeaseConfig, error) {
	aggregate, err := s.apps.Application(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application %s: %w", applicationID, err)
	}

	situation := SituationFromAggregate(aggregate)

	config, err := Generate(situation)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"application_id": applicationID,
		"template":       config.Template,
		"solidarity":     config.Solidarity,
		"duration":       config.Financials.DurationMonths,
	}).Info("lease configuration generated")

	return config, nil
}

// SituationFromAggregate flattens the stored aggregate into the engine's
// input snapshot. A missing explicit request means DEFAULT.
func SituationFromAggregate(aggregate *types.ApplicationAggregate) *types.RentalSituation {
	app := aggregate.Application
	property := aggregate.Property

	request := types.LeaseRequestDefault
	if app.Requested != nil {
		request = *app.Requested
	}

	applicants := make([]types.Applicant, 0, len(aggregate.Applicants))
	for _, applicant := range aggregate.Applicants {
		applicants = append(applicants, *applicant)
	}

	return &types.RentalSituation{
		Property: types.PropertyAttributes{
			Address:         property.Address,
			AddressExt:      utils.PtrString(property.AddressExt),
			City:            property.City,
			ZipCode:         property.ZipCode,
			Furnished:       property.Furnished,
			ZoneTension:     property.ZoneTension,
			ReferenceRent:   property.RefRent,
			ReferenceRentUp: property.RefRentUp,
			LegalRegime:     property.LegalRegime,
			Amenities:       property.Amenities,
		},
		Composition:  app.Composition,
		CoupleStatus: app.CoupleStatus,
		Request:      request,
		Applicants:   applicants,
		Financials: types.FinancialInputs{
			RentExcludingCharges: app.RentExcludingCharges,
			Charges:              app.Charges,
			DepositOverride:      app.DepositOverride,
			DurationOverride:     app.DurationOverride,
			PaymentDay:           app.PaymentDay,
			PaymentMethod:        app.PaymentMethod,
		},
	}
}
