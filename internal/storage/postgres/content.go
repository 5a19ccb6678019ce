package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// SavePublisher сохраняет издание и закрепляет за ним редактора-создателя.
// Обе вставки — в одной транзакции: издание без закреплённого редактора
// осталось бы без права утверждения.
func (s *Storage) SavePublisher(ctx context.Context, p *models.Publisher, editorID uuid.UUID) error {
	const op = "storage.postgres.SavePublisher"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
        INSERT INTO publishers (id, name, description, website, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, p.ID, p.Name, p.Description, p.Website, p.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO publisher_editors (publisher_id, editor_id)
        VALUES ($1, $2)
    `, p.ID, editorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: grant creator: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// PublisherByID возвращает издание по идентификатору.
func (s *Storage) PublisherByID(ctx context.Context, id uuid.UUID) (*models.Publisher, error) {
	const op = "storage.postgres.PublisherByID"

	var p models.Publisher
	err := s.db.QueryRow(ctx, `
        SELECT id, name, description, website, created_at
        FROM publishers
        WHERE id = $1
    `, id).Scan(&p.ID, &p.Name, &p.Description, &p.Website, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.CreatedAt = p.CreatedAt.UTC()

	return &p, nil
}

// ListPublishers возвращает все издания, отсортированные по имени.
func (s *Storage) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	const op = "storage.postgres.ListPublishers"

	rows, err := s.db.Query(ctx, `
        SELECT id, name, description, website, created_at
        FROM publishers
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Publisher
	for rows.Next() {
		var p models.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Website, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		p.CreatedAt = p.CreatedAt.UTC()
		items = append(items, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// AddStaffJournalist зачисляет журналиста в штат издания (идемпотентно).
func (s *Storage) AddStaffJournalist(ctx context.Context, publisherID, journalistID uuid.UUID) error {
	const op = "storage.postgres.AddStaffJournalist"

	query := `
        INSERT INTO publisher_journalists (publisher_id, journalist_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `

	if _, err := s.db.Exec(ctx, query, publisherID, journalistID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// StaffJournalists возвращает журналистов штата издания.
func (s *Storage) StaffJournalists(ctx context.Context, publisherID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage.postgres.StaffJournalists"

	return s.relatedIDs(ctx, op, `
        SELECT journalist_id FROM publisher_journalists WHERE publisher_id = $1
    `, publisherID)
}

// SaveCategory сохраняет рубрику.
func (s *Storage) SaveCategory(ctx context.Context, c *models.Category) error {
	const op = "storage.postgres.SaveCategory"

	_, err := s.db.Exec(ctx, `
        INSERT INTO categories (id, name, description)
        VALUES ($1, $2, $3)
    `, c.ID, c.Name, c.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListCategories возвращает все рубрики, отсортированные по имени.
func (s *Storage) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.postgres.ListCategories"

	rows, err := s.db.Query(ctx, `
        SELECT id, name, description
        FROM categories
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		items = append(items, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}
