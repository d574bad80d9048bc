package repository

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
)

// NotificationLogRepository records delivery outcomes for audit. It is
// written outside the reservation transaction; a lost log line must
// never fail a booking.
type NotificationLogRepository struct {
	db db.DBTX
}

func NewNotificationLogRepository(dbtx db.DBTX) *NotificationLogRepository {
	return &NotificationLogRepository{db: dbtx}
}

const insertNotificationLogSQL = `
INSERT INTO notification_log (event, channel, recipient, reference, success, error)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *NotificationLogRepository) Record(ctx context.Context, event, channel, recipient, reference string, success bool, errMsg string) error {
	_, err := r.db.Exec(ctx, insertNotificationLogSQL, event, channel, recipient, reference, success, errMsg)
	if err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}
