package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// SaveUser сохраняет нового пользователя.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
        INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		user.CreatedAt.UTC(),
		user.UpdatedAt.UTC(),
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserByID возвращает пользователя по идентификатору.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	return s.userBy(ctx, op, `WHERE id = $1`, id)
}

// UserByEmail возвращает пользователя по email.
// Email нормализуется (TrimSpace + lower) — колонка citext нечувствительна к регистру.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	return s.userBy(ctx, op, `WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Storage) userBy(ctx context.Context, op, where string, arg any) (*models.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, created_at, updated_at
        FROM users ` + where

	var user models.User
	var role string
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.Role = models.Role(role)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return &user, nil
}

// HasAuthority сообщает, закреплён ли редактор за изданием.
func (s *Storage) HasAuthority(ctx context.Context, editorID, publisherID uuid.UUID) (bool, error) {
	const op = "storage.postgres.HasAuthority"

	query := `
        SELECT EXISTS (
            SELECT 1 FROM publisher_editors
            WHERE editor_id = $1 AND publisher_id = $2
        )
    `

	var ok bool
	if err := s.db.QueryRow(ctx, query, editorID, publisherID).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// GrantAuthority закрепляет редактора за изданием (идемпотентно).
func (s *Storage) GrantAuthority(ctx context.Context, editorID, publisherID uuid.UUID) error {
	const op = "storage.postgres.GrantAuthority"

	query := `
        INSERT INTO publisher_editors (publisher_id, editor_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `

	if _, err := s.db.Exec(ctx, query, publisherID, editorID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// EditorPublishers возвращает издания, закреплённые за редактором.
func (s *Storage) EditorPublishers(ctx context.Context, editorID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage.postgres.EditorPublishers"

	return s.relatedIDs(ctx, op, `
        SELECT publisher_id FROM publisher_editors WHERE editor_id = $1
    `, editorID)
}

// PublisherEditors возвращает редакторов, закреплённых за изданием.
func (s *Storage) PublisherEditors(ctx context.Context, publisherID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage.postgres.PublisherEditors"

	return s.relatedIDs(ctx, op, `
        SELECT editor_id FROM publisher_editors WHERE publisher_id = $1
    `, publisherID)
}

// relatedIDs — выборка одной UUID-колонки по ключу (связи many-to-many).
func (s *Storage) relatedIDs(ctx context.Context, op, query string, key uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return ids, nil
}
