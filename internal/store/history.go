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

const historyTableName = "coridor.rental_history_entries"

var historyColumns = utils.StructTagValues(types.RentalHistoryEntry{})

type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) Entry(ctx context.Context, entryID string) (*types.RentalHistoryEntry, error) {
	query, args, err := psql().
		Select(historyColumns...).
		From(historyTableName).
		Where(sq.Eq{"id": entryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate history entry query: %w", err)
	}

	var entry types.RentalHistoryEntry
	err = pgxscan.Get(ctx, r.pool, &entry, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch history entry: %w", err)
	}

	return &entry, nil
}

func (r *HistoryRepository) EntriesByProfile(ctx context.Context, profileID string) ([]*types.RentalHistoryEntry, error) {
	query, args, err := psql().
		Select(historyColumns...).
		From(historyTableName).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate history query: %w", err)
	}

	entries := make([]*types.RentalHistoryEntry, 0)
	err = pgxscan.Select(ctx, r.pool, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history entries: %w", err)
	}

	return entries, nil
}

func (r *HistoryRepository) Create(ctx context.Context, entry *types.RentalHistoryEntry) error {
	now := time.Now()
	entry.ID = utils.NanoID()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := psql().
		Insert(historyTableName).
		SetMap(utils.StructToMap(entry)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create history entry query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	return nil
}

func (r *HistoryRepository) Update(ctx context.Context, entryID string, entry *types.RentalHistoryEntry) error {
	entry.ID = entryID
	entry.UpdatedAt = time.Now()

	entryMap := utils.StructToMap(entry)
	delete(entryMap, "created_at")

	query, args, err := psql().
		Update(historyTableName).
		SetMap(entryMap).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update history entry query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update history entry: %w", err)
	}

	return nil
}

func (r *HistoryRepository) Delete(ctx context.Context, entryID string) error {
	query, args, err := psql().
		Delete(historyTableName).
		Where(sq.Eq{"id": entryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete history entry query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to delete history entry")
}
