package store

import (
	"context"
	"fmt"
	"time"

	"coridor/internal/utils"
	"coridor/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationTableName = "coridor.notifications"

// NotificationRepository backs the Notifier collaborator with in-app
// notification rows.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Notify(ctx context.Context, userID, kind, title, body string) error {
	notification := &types.Notification{
		ID:        utils.NanoID(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}

	query, args, err := psql().
		Insert(notificationTableName).
		SetMap(utils.StructToMap(notification)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create notification query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to create notification")
}
