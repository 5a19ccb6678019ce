package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// SaveArticle сохраняет новую статью (state = draft).
func (s *Storage) SaveArticle(ctx context.Context, a *models.Article) error {
	const op = "storage.postgres.SaveArticle"

	query := `
        INSERT INTO articles (id, title, summary, body, author_id, publisher_id, category_id, state, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	_, err := s.db.Exec(ctx, query,
		a.ID,
		a.Title,
		a.Summary,
		a.Body,
		a.AuthorID,
		a.PublisherID,
		nullableID(a.CategoryID),
		string(a.State),
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateDraft обновляет содержимое статьи при условии state = draft.
// Если запись существует, но уже не черновик — storage.ErrWrongState.
func (s *Storage) UpdateDraft(ctx context.Context, a *models.Article) error {
	const op = "storage.postgres.UpdateDraft"

	const upd = `
        UPDATE articles
        SET title = $2, summary = $3, body = $4, category_id = $5, updated_at = $6
        WHERE id = $1 AND state = 'draft'
    `

	cmdTag, err := s.db.Exec(ctx, upd,
		a.ID, a.Title, a.Summary, a.Body, nullableID(a.CategoryID), a.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Условие не прошло: различаем «нет записи» и «не тот state».
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, a.ID).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, storage.ErrWrongState)
}

// ArticleByID возвращает статью по идентификатору.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage.postgres.ArticleByID"

	row := s.db.QueryRow(ctx, `
        SELECT id, title, summary, body, author_id, publisher_id, category_id, state, approved_by, approved_at, created_at, updated_at
        FROM articles
        WHERE id = $1
    `, id)

	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// ListArticles возвращает страницу статей по фильтру с курсорной пагинацией.
// Сортировка фиксирована: created_at DESC, id DESC.
// page_token — непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (s *Storage) ListArticles(ctx context.Context, f models.ArticleFilter, opts models.ListOptions) (*models.ArticlePage, error) {
	const op = "storage.postgres.ListArticles"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	qb := sq.Select(
		"id", "title", "summary", "body", "author_id", "publisher_id",
		"category_id", "state", "approved_by", "approved_at", "created_at", "updated_at",
	).
		From("articles").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if f.State != "" {
		qb = qb.Where(sq.Eq{"state": string(f.State)})
	}
	if f.PublisherID != uuid.Nil {
		qb = qb.Where(sq.Eq{"publisher_id": f.PublisherID})
	}
	if f.AuthorID != uuid.Nil {
		qb = qb.Where(sq.Eq{"author_id": f.AuthorID})
	}

	if opts.PageToken != "" {
		createdCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		qb = qb.Where(sq.Expr("(created_at, id) < (?, ?)", createdCur, idCur))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.ArticlePage
	for rows.Next() {
		a, scanErr := scanArticle(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		page.Items = append(page.Items, *a)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.CreatedAt, last.ID)
	}

	return &page, nil
}

// TransitionArticle — атомарный CAS состояния: from -> to.
// Проигранная гонка (state != from) -> storage.ErrWrongState.
func (s *Storage) TransitionArticle(ctx context.Context, id uuid.UUID, from, to models.State) error {
	const op = "storage.postgres.TransitionArticle"

	const upd = `
        UPDATE articles
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
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, storage.ErrWrongState)
}

// ApproveArticle — транзакция утверждения: условный UPDATE pending -> approved
// со штампами approved_by/approved_at плюс вставка outbox-записи.
//
// Гарантии:
//   - из конкурирующих вызовов выигрывает ровно один (CAS по state);
//   - outbox-запись создаётся в той же транзакции, поэтому на успешный
//     переход приходится ровно одно задание fan-out;
//   - уникальный индекс (kind, content_id) защищает от повторной вставки.
func (s *Storage) ApproveArticle(ctx context.Context, id, editorID uuid.UUID, at time.Time) error {
	const op = "storage.postgres.ApproveArticle"

	return s.approveContent(ctx, op, "articles", models.OutboxArticle, id, editorID, at)
}

// approveContent — общая транзакция утверждения для articles/newsletters.
func (s *Storage) approveContent(ctx context.Context, op, table string, kind models.OutboxKind, id, editorID uuid.UUID, at time.Time) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	upd := `
        UPDATE ` + table + `
        SET state = 'approved', approved_by = $2, approved_at = $3, updated_at = $3
        WHERE id = $1 AND state = 'pending'
    `

	cmdTag, err := tx.Exec(ctx, upd, id, editorID, at.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if !exists {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, storage.ErrWrongState)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO notification_outbox (kind, content_id, enqueued_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (kind, content_id) DO NOTHING
    `, string(kind), id, at.UTC())
	if err != nil {
		return fmt.Errorf("%s: enqueue outbox: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// scanArticle читает статью из строки выборки (порядок колонок фиксирован).
func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	var state string
	var categoryID, approvedBy *uuid.UUID

	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Summary,
		&a.Body,
		&a.AuthorID,
		&a.PublisherID,
		&categoryID,
		&state,
		&approvedBy,
		&a.ApprovedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.State = models.State(state)
	if categoryID != nil {
		a.CategoryID = *categoryID
	}
	if approvedBy != nil {
		a.ApprovedBy = *approvedBy
	}
	if a.ApprovedAt != nil {
		t := a.ApprovedAt.UTC()
		a.ApprovedAt = &t
	}

	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()

	return &a, nil
}

// nullableID конвертирует uuid.Nil в NULL для вставки.
func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}

	return &id
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(createdAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", createdAt.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, t).UTC(), id, nil
}
