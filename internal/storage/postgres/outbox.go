package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/newsroom-service/internal/models"
)

// PendingOutbox возвращает до limit незавершённых fan-out записей, старые — первыми.
func (s *Storage) PendingOutbox(ctx context.Context, limit int32) ([]models.OutboxEntry, error) {
	const op = "storage.postgres.PendingOutbox"

	if limit <= 0 {
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, kind, content_id, enqueued_at, dispatched_at
        FROM notification_outbox
        WHERE dispatched_at IS NULL
        ORDER BY enqueued_at, id
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.OutboxEntry
	for rows.Next() {
		var e models.OutboxEntry
		var kind string

		if err := rows.Scan(&e.ID, &kind, &e.ContentID, &e.EnqueuedAt, &e.DispatchedAt); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		e.Kind = models.OutboxKind(kind)
		e.EnqueuedAt = e.EnqueuedAt.UTC()
		items = append(items, e)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// MarkDispatched помечает запись завершённой. Повторная пометка — no-op
// (условие dispatched_at IS NULL).
func (s *Storage) MarkDispatched(ctx context.Context, id int64, at time.Time) error {
	const op = "storage.postgres.MarkDispatched"

	_, err := s.db.Exec(ctx, `
        UPDATE notification_outbox
        SET dispatched_at = $2
        WHERE id = $1 AND dispatched_at IS NULL
    `, id, at.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
