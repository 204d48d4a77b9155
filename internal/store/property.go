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

const propertyTableName = "coridor.properties"

var propertyColumns = utils.StructTagValues(types.Property{})

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Property(ctx context.Context, propertyID string) (*types.Property, error) {
	query, args, err := psql().
		Select(propertyColumns...).
		From(propertyTableName).
		Where(sq.Eq{"id": propertyID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate property query: %w", err)
	}

	var property types.Property
	err = pgxscan.Get(ctx, r.pool, &property, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to fetch property: %w", err)
	}

	return &property, nil
}

// CountOwnedBy backs the passport visibility gate: a viewer must own at
// least one property to see anything.
func (r *PropertyRepository) CountOwnedBy(ctx context.Context, userID string) (int, error) {
	query, args, err := psql().
		Select("count(*)").
		From(propertyTableName).
		Where(sq.Eq{"owner_user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate ownership count query: %w", err)
	}

	var count int
	err = pgxscan.Get(ctx, r.pool, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count owned properties: %w", err)
	}

	return count, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *types.Property) error {
	now := time.Now()
	property.ID = utils.NanoID()
	property.CreatedAt = now
	property.UpdatedAt = now

	query, args, err := psql().
		Insert(propertyTableName).
		SetMap(utils.StructToMap(property)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create property query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}
