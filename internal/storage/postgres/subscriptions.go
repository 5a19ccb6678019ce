package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/newsroom-service/internal/models"
)

// AddSubscription добавляет подписку читателя.
// Повтор той же пары (reader, target) — no-op: частичные уникальные
// индексы плюс ON CONFLICT DO NOTHING.
func (s *Storage) AddSubscription(ctx context.Context, sub *models.Subscription) error {
	const op = "storage.postgres.AddSubscription"

	var query string
	switch sub.Target.Kind {
	case models.TargetPublisher:
		query = `
            INSERT INTO subscriptions (id, reader_id, publisher_id, created_at)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (reader_id, publisher_id) WHERE publisher_id IS NOT NULL DO NOTHING
        `
	case models.TargetJournalist:
		query = `
            INSERT INTO subscriptions (id, reader_id, journalist_id, created_at)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (reader_id, journalist_id) WHERE journalist_id IS NOT NULL DO NOTHING
        `
	default:
		return fmt.Errorf("%s: unknown target kind %q", op, sub.Target.Kind)
	}

	_, err := s.db.Exec(ctx, query, sub.ID, sub.ReaderID, sub.Target.ID, sub.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveSubscription удаляет подписку; отсутствие записи — no-op.
func (s *Storage) RemoveSubscription(ctx context.Context, readerID uuid.UUID, target models.Target) error {
	const op = "storage.postgres.RemoveSubscription"

	var query string
	switch target.Kind {
	case models.TargetPublisher:
		query = `DELETE FROM subscriptions WHERE reader_id = $1 AND publisher_id = $2`
	case models.TargetJournalist:
		query = `DELETE FROM subscriptions WHERE reader_id = $1 AND journalist_id = $2`
	default:
		return fmt.Errorf("%s: unknown target kind %q", op, target.Kind)
	}

	if _, err := s.db.Exec(ctx, query, readerID, target.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListByReader возвращает подписки читателя.
func (s *Storage) ListByReader(ctx context.Context, readerID uuid.UUID) ([]models.Subscription, error) {
	const op = "storage.postgres.ListByReader"

	rows, err := s.db.Query(ctx, `
        SELECT id, reader_id, publisher_id, journalist_id, created_at
        FROM subscriptions
        WHERE reader_id = $1
        ORDER BY created_at
    `, readerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		var publisherID, journalistID *uuid.UUID

		if err := rows.Scan(&sub.ID, &sub.ReaderID, &publisherID, &journalistID, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		// CHECK-констрейнт гарантирует ровно одну цель.
		switch {
		case publisherID != nil:
			sub.Target = models.Target{Kind: models.TargetPublisher, ID: *publisherID}
		case journalistID != nil:
			sub.Target = models.Target{Kind: models.TargetJournalist, ID: *journalistID}
		}

		sub.CreatedAt = sub.CreatedAt.UTC()
		items = append(items, sub)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// PublisherSubscribers возвращает читателей, подписанных на издание.
func (s *Storage) PublisherSubscribers(ctx context.Context, publisherID uuid.UUID) ([]models.Recipient, error) {
	const op = "storage.postgres.PublisherSubscribers"

	return s.subscribersBy(ctx, op, `
        SELECT u.id, u.email, u.username
        FROM subscriptions s
        JOIN users u ON u.id = s.reader_id
        WHERE s.publisher_id = $1
    `, publisherID)
}

// JournalistSubscribers возвращает читателей, подписанных на журналиста.
func (s *Storage) JournalistSubscribers(ctx context.Context, journalistID uuid.UUID) ([]models.Recipient, error) {
	const op = "storage.postgres.JournalistSubscribers"

	return s.subscribersBy(ctx, op, `
        SELECT u.id, u.email, u.username
        FROM subscriptions s
        JOIN users u ON u.id = s.reader_id
        WHERE s.journalist_id = $1
    `, journalistID)
}

func (s *Storage) subscribersBy(ctx context.Context, op, query string, arg any) ([]models.Recipient, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Recipient
	for rows.Next() {
		var r models.Recipient
		if err := rows.Scan(&r.UserID, &r.Email, &r.Username); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		items = append(items, r)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}
