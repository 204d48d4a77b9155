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

const profileTableName = "coridor.tenant_profiles"

var profileColumns = utils.StructTagValues(types.TenantProfile{})

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Profile(ctx context.Context, profileID string) (*types.TenantProfile, error) {
	query, args, err := psql().
		Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile query: %w", err)
	}

	var profile types.TenantProfile
	err = pgxscan.Get(ctx, r.pool, &profile, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

func (r *ProfileRepository) ProfileByUser(ctx context.Context, userID string) (*types.TenantProfile, error) {
	query, args, err := psql().
		Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile-by-user query: %w", err)
	}

	var profile types.TenantProfile
	err = pgxscan.Get(ctx, r.pool, &profile, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile by user: %w", err)
	}

	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *types.TenantProfile) error {
	now := time.Now()
	profile.ID = utils.NanoID()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query, args, err := psql().
		Insert(profileTableName).
		SetMap(utils.StructToMap(profile)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profileID string, profile *types.TenantProfile) error {
	profile.ID = profileID
	profile.UpdatedAt = time.Now()

	profileMap := utils.StructToMap(profile)
	delete(profileMap, "created_at")

	query, args, err := psql().
		Update(profileTableName).
		SetMap(profileMap).
		Where(sq.Eq{"id": profileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
