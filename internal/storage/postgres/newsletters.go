package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// SaveNewsletter сохраняет новый выпуск рассылки (state = draft).
func (s *Storage) SaveNewsletter(ctx context.Context, n *models.Newsletter) error {
	const op = "storage.postgres.SaveNewsletter"

	query := `
        INSERT INTO newsletters (id, title, summary, body, author_id, publisher_id, state, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := s.db.Exec(ctx, query,
		n.ID,
		n.Title,
		n.Summary,
		n.Body,
		n.AuthorID,
		n.PublisherID,
		string(n.State),
		n.CreatedAt.UTC(),
		n.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// NewsletterByID возвращает выпуск по идентификатору.
func (s *Storage) NewsletterByID(ctx context.Context, id uuid.UUID) (*models.Newsletter, error) {
	const op = "storage.postgres.NewsletterByID"

	var n models.Newsletter
	var state string
	var approvedBy *uuid.UUID

	err := s.db.QueryRow(ctx, `
        SELECT id, title, summary, body, author_id, publisher_id, state, approved_by, approved_at, created_at, updated_at
        FROM newsletters
        WHERE id = $1
    `, id).Scan(
		&n.ID,
		&n.Title,
		&n.Summary,
		&n.Body,
		&n.AuthorID,
		&n.PublisherID,
		&state,
		&approvedBy,
		&n.ApprovedAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n.State = models.State(state)
	if approvedBy != nil {
		n.ApprovedBy = *approvedBy
	}
	if n.ApprovedAt != nil {
		t := n.ApprovedAt.UTC()
		n.ApprovedAt = &t
	}

	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()

	return &n, nil
}

// TransitionNewsletter — атомарный CAS состояния выпуска: from -> to.
func (s *Storage) TransitionNewsletter(ctx context.Context, id uuid.UUID, from, to models.State) error {
	const op = "storage.postgres.TransitionNewsletter"

	const upd = `
        UPDATE newsletters
        SET state = $3, updated_at = now()
        WHERE id = $1 AND state = $2
    `

	cmdTag, err := s.db.Exec(ctx, upd, id, string(from), string(to))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM newsletters WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, storage.ErrWrongState)
}

// ApproveNewsletter — транзакция утверждения выпуска с outbox-записью.
// Семантика совпадает с ApproveArticle.
func (s *Storage) ApproveNewsletter(ctx context.Context, id, editorID uuid.UUID, at time.Time) error {
	const op = "storage.postgres.ApproveNewsletter"

	return s.approveContent(ctx, op, "newsletters", models.OutboxNewsletter, id, editorID, at)
}
