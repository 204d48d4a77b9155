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
	reviewTableName      = "coridor.landlord_reviews"
	reviewScoreTableName = "coridor.landlord_review_scores"
)

var (
	reviewColumns      = utils.StructTagValues(types.LandlordReview{})
	reviewScoreColumns = utils.StructTagValues(types.ReviewScore{})
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Review(ctx context.Context, reviewID string) (*types.LandlordReview, error) {
	return r.one(ctx, sq.Eq{"id": reviewID})
}

func (r *ReviewRepository) ReviewByEntry(ctx context.Context, entryID string) (*types.LandlordReview, error) {
	return r.one(ctx, sq.Eq{"history_entry_id": entryID})
}

func (r *ReviewRepository) one(ctx context.Context, where sq.Eq) (*types.LandlordReview, error) {
	query, args, err := psql().
		Select(reviewColumns...).
		From(reviewTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate review query: %w", err)
	}

	var review types.LandlordReview
	err = pgxscan.Get(ctx, r.pool, &review, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}

	review.Scores, err = r.scores(ctx, review.ID)
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewRepository) ReviewsByProfile(ctx context.Context, profileID string) ([]*types.LandlordReview, error) {
	query, args, err := psql().
		Select(reviewColumns...).
		From(reviewTableName).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reviews query: %w", err)
	}

	reviews := make([]*types.LandlordReview, 0)
	err = pgxscan.Select(ctx, r.pool, &reviews, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) scores(ctx context.Context, reviewID string) ([]*types.ReviewScore, error) {
	query, args, err := psql().
		Select(reviewScoreColumns...).
		From(reviewScoreTableName).
		Where(sq.Eq{"review_id": reviewID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate review scores query: %w", err)
	}

	scores := make([]*types.ReviewScore, 0)
	err = pgxscan.Select(ctx, r.pool, &scores, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review scores: %w", err)
	}

	return scores, nil
}

// Create persists the review row and its nested criterion score rows.
func (r *ReviewRepository) Create(ctx context.Context, review *types.LandlordReview) error {
	now := time.Now()
	review.ID = utils.NanoID()
	review.CreatedAt = now
	review.UpdatedAt = now

	query, args, err := psql().
		Insert(reviewTableName).
		SetMap(utils.StructToMap(review)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create review query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	for _, score := range review.Scores {
		score.ID = utils.NanoID()
		score.ReviewID = review.ID

		query, args, err := psql().
			Insert(reviewScoreTableName).
			SetMap(utils.StructToMap(score)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate create review score query: %w", err)
		}

		_, err = r.pool.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to create review score: %w", err)
		}
	}

	return nil
}

func (r *ReviewRepository) GrantConsent(ctx context.Context, reviewID string, at time.Time) error {
	query, args, err := psql().
		Update(reviewTableName).
		Set("tenant_consented", true).
		Set("consented_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": reviewID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate consent query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to grant review consent")
}
