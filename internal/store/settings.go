package store

import (
	"context"
	"fmt"

	"coridor/internal/utils"
	"coridor/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsTableName = "coridor.passport_settings"

var settingsColumns = utils.StructTagValues(types.PassportSettings{})

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Settings(ctx context.Context, profileID string) (*types.PassportSettings, error) {
	query, args, err := psql().
		Select(settingsColumns...).
		From(settingsTableName).
		Where(sq.Eq{"profile_id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate settings query: %w", err)
	}

	var settings types.PassportSettings
	err = pgxscan.Get(ctx, r.pool, &settings, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	return &settings, nil
}

// Upsert writes the single settings row a tenant profile owns.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *types.PassportSettings) error {
	query := `
		INSERT INTO coridor.passport_settings
			(profile_id, is_enabled, show_payment_badge, show_rental_history,
			 show_landlord_reviews, show_financial_summary, show_verified_months)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (profile_id)
		DO UPDATE SET
			is_enabled = EXCLUDED.is_enabled,
			show_payment_badge = EXCLUDED.show_payment_badge,
			show_rental_history = EXCLUDED.show_rental_history,
			show_landlord_reviews = EXCLUDED.show_landlord_reviews,
			show_financial_summary = EXCLUDED.show_financial_summary,
			show_verified_months = EXCLUDED.show_verified_months,
			updated_at = now()`

	_, err := r.pool.Exec(ctx, query,
		settings.ProfileID,
		settings.IsEnabled,
		settings.ShowPaymentBadge,
		settings.ShowRentalHistory,
		settings.ShowLandlordReviews,
		settings.ShowFinancialSummary,
		settings.ShowVerifiedMonths,
	)

	return utils.ErrorWrapOrNil(err, "failed to upsert settings")
}
