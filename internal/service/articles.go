package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
	"github.com/pribylovaa/newsroom-service/pkg/log"
)

// Входные структуры сервисного слоя.

// CreateArticleInput — создание черновика статьи.
// Всегда обязательны: Title, Body, PublisherID. CategoryID опциональна.
type CreateArticleInput struct {
	Title       string
	Summary     string
	Body        string
	PublisherID uuid.UUID
	CategoryID  uuid.UUID
}

// UpdateArticleInput — правка черновика автором.
type UpdateArticleInput struct {
	ArticleID  uuid.UUID
	Title      string
	Summary    string
	Body       string
	CategoryID uuid.UUID
}

// CreateArticle — создание статьи журналистом. Новая статья всегда
// в состоянии draft.
//
// Ошибки:
//   - ErrUnauthorized — вызывающий не журналист;
//   - ErrInvalidArgument — пустые title/body или нулевой publisher;
//   - ErrNotFound — издание не существует.
func (s *Service) CreateArticle(ctx context.Context, actor models.Principal, in CreateArticleInput) (*models.Article, error) {
	const op = "service.articles.CreateArticle"

	lg := log.From(ctx).With(slog.String("op", op), slog.String("actor", actor.ID.String()))

	if actor.Role != models.RoleJournalist {
		lg.Warn("create_article_forbidden", slog.String("role", string(actor.Role)))
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	if in.Title == "" || in.Body == "" || in.PublisherID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PublisherByID(ctx, in.PublisherID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	article := &models.Article{
		ID:          uuid.New(),
		Title:       in.Title,
		Summary:     strings.TrimSpace(in.Summary),
		Body:        in.Body,
		AuthorID:    actor.ID,
		PublisherID: in.PublisherID,
		CategoryID:  in.CategoryID,
		State:       models.StateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveArticle(ctx, article); err != nil {
		lg.Error("create_article_storage_error", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("article_created", slog.String("article_id", article.ID.String()))

	return article, nil
}

// UpdateArticle — правка содержимого черновика.
// Разрешена только автору и только в состоянии draft: после submit
// контент заморожен до reject/approve, после approve — неизменяем.
//
// Ошибки:
//   - ErrUnauthorized — вызывающий не автор статьи;
//   - ErrInvalidTransition — статья уже не черновик;
//   - ErrNotFound — статьи нет.
func (s *Service) UpdateArticle(ctx context.Context, actor models.Principal, in UpdateArticleInput) (*models.Article, error) {
	const op = "service.articles.UpdateArticle"

	lg := log.From(ctx).With(slog.String("op", op), slog.String("article_id", in.ArticleID.String()))

	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	if in.ArticleID == uuid.Nil || in.Title == "" || in.Body == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleByID(ctx, in.ArticleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if article.AuthorID != actor.ID {
		lg.Warn("update_article_forbidden", slog.String("actor", actor.ID.String()))
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	article.Title = in.Title
	article.Summary = strings.TrimSpace(in.Summary)
	article.Body = in.Body
	article.CategoryID = in.CategoryID
	article.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateDraft(ctx, article); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrWrongState):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidTransition)
		default:
			lg.Error("update_article_storage_error", slog.String("err", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return article, nil
}

// ArticleByID возвращает статью по идентификатору.
func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "service.articles.ArticleByID"

	if id == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

// ListArticles возвращает страницу статей с нормализацией лимита по конфигу.
//
// Правила нормализации:
//   - limit <= 0 -> cfg.LimitsConfig.Default;
//   - limit > max -> cfg.LimitsConfig.Max;
//   - пустой pageToken -> первая страница.
//
// Ошибки:
//   - ErrInvalidCursor — битый/чужой page_token (маппинг storage.ErrInvalidCursor);
//   - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ListArticles(ctx context.Context, f models.ArticleFilter, opts models.ListOptions) (*models.ArticlePage, error) {
	const op = "service.articles.ListArticles"

	if f.State != "" && !f.State.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && opts.Limit > s.cfg.LimitsConfig.Max {
		opts.Limit = s.cfg.LimitsConfig.Max
	}

	page, err := s.storage.ListArticles(ctx, f, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		log.From(ctx).Error("list_articles_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}
