package store

import (
	"context"
	"fmt"
	"time"

	"coridor/internal/utils"
	"coridor/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationTableName = "coridor.lease_applications"
	applicantTableName   = "coridor.applicants"
)

var (
	applicationColumns = utils.StructTagValues(types.LeaseApplication{})
	applicantColumns   = utils.StructTagValues(types.Applicant{})
)

type ApplicationRepository struct {
	pool       *pgxpool.Pool
	properties *PropertyRepository
}

func NewApplicationRepository(pool *pgxpool.Pool, properties *PropertyRepository) *ApplicationRepository {
	return &ApplicationRepository{pool: pool, properties: properties}
}

// Application reads the full aggregate the lease engine works from:
// application row, its property, and its applicants in position order.
func (r *ApplicationRepository) Application(ctx context.Context, applicationID string) (*types.ApplicationAggregate, error) {
	query, args, err := psql().
		Select(applicationColumns...).
		From(applicationTableName).
		Where(sq.Eq{"id": applicationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application query: %w", err)
	}

	var application types.LeaseApplication
	err = pgxscan.Get(ctx, r.pool, &application, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	property, err := r.properties.Property(ctx, application.PropertyID)
	if err != nil {
		return nil, err
	}

	applicants, err := r.applicants(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	return &types.ApplicationAggregate{
		Application: &application,
		Property:    property,
		Applicants:  applicants,
	}, nil
}

func (r *ApplicationRepository) applicants(ctx context.Context, applicationID string) ([]*types.Applicant, error) {
	query, args, err := psql().
		Select(applicantColumns...).
		From(applicantTableName).
		Where(sq.Eq{"application_id": applicationID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate applicants query: %w", err)
	}

	var applicants []*types.Applicant
	err = pgxscan.Select(ctx, r.pool, &applicants, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applicants: %w", err)
	}

	return applicants, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, application *types.LeaseApplication, applicants []*types.Applicant) error {
	now := time.Now()
	application.ID = utils.NanoID()
	application.CreatedAt = now
	application.UpdatedAt = now

	query, args, err := psql().
		Insert(applicationTableName).
		SetMap(utils.StructToMap(application)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create application query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	for i, applicant := range applicants {
		applicant.ID = utils.NanoID()
		applicant.ApplicationID = application.ID
		applicant.Position = i

		query, args, err := psql().
			Insert(applicantTableName).
			SetMap(utils.StructToMap(applicant)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate create applicant query: %w", err)
		}

		_, err = r.pool.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to create applicant: %w", err)
		}
	}

	return nil
}
