package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/metrics"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
	"github.com/pribylovaa/newsroom-service/pkg/log"
)

// Жизненный цикл контента.
//
// Переходы выполняются условным UPDATE в хранилище (CAS по state):
// при конкурирующих вызовах выигрывает ровно один, проигравший получает
// ErrInvalidTransition. Утверждение — единственный путь, порождающий
// fan-out: outbox-запись вставляется в той же транзакции, что и переход
// pending -> approved, поэтому повторное утверждение (как и ретраи)
// не приводит к повторной рассылке.

// SubmitArticle — подача черновика на утверждение: draft -> pending.
// Разрешена только автору статьи.
func (s *Service) SubmitArticle(ctx context.Context, actor models.Principal, articleID uuid.UUID) error {
	const op = "service.lifecycle.SubmitArticle"

	article, err := s.articleForTransition(ctx, op, articleID)
	if err != nil {
		return err
	}

	if article.AuthorID != actor.ID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.storage.TransitionArticle(ctx, articleID, models.StateDraft, models.StatePending); err != nil {
		return s.mapTransitionErr(op, err)
	}

	log.From(ctx).Info("article_submitted",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
	)

	return nil
}

// ApproveArticle — утверждение статьи редактором: pending -> approved.
//
// Требования:
//   - actor имеет роль editor и полномочия над изданием статьи;
//   - текущее состояние pending (иначе ErrInvalidTransition, в том числе
//     для проигравшего из двух конкурирующих вызовов).
//
// Побочный эффект: на успешный переход ставится ровно одна outbox-запись;
// саму рассылку выполняет диспетчер (см. dispatcher.go) после коммита.
func (s *Service) ApproveArticle(ctx context.Context, actor models.Principal, articleID uuid.UUID) error {
	const op = "service.lifecycle.ApproveArticle"

	article, err := s.articleForTransition(ctx, op, articleID)
	if err != nil {
		return err
	}

	if err := s.requireAuthority(ctx, op, actor, article.PublisherID); err != nil {
		return err
	}

	if err := s.storage.ApproveArticle(ctx, articleID, actor.ID, time.Now().UTC()); err != nil {
		return s.mapTransitionErr(op, err)
	}

	metrics.Approvals.WithLabelValues("article").Inc()
	log.From(ctx).Info("article_approved",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
		slog.String("editor_id", actor.ID.String()),
	)

	return nil
}

// RejectArticle — отклонение статьи редактором: pending -> rejected.
// Та же проверка полномочий, что и у ApproveArticle; рассылки нет.
func (s *Service) RejectArticle(ctx context.Context, actor models.Principal, articleID uuid.UUID) error {
	const op = "service.lifecycle.RejectArticle"

	article, err := s.articleForTransition(ctx, op, articleID)
	if err != nil {
		return err
	}

	if err := s.requireAuthority(ctx, op, actor, article.PublisherID); err != nil {
		return err
	}

	if err := s.storage.TransitionArticle(ctx, articleID, models.StatePending, models.StateRejected); err != nil {
		return s.mapTransitionErr(op, err)
	}

	metrics.Rejections.WithLabelValues("article").Inc()
	log.From(ctx).Info("article_rejected",
		slog.String("op", op),
		slog.String("article_id", articleID.String()),
		slog.String("editor_id", actor.ID.String()),
	)

	return nil
}

// ResubmitArticle — возврат отклонённой статьи в черновик: rejected -> draft.
// Разрешён только автору; дальше обычный путь submit.
func (s *Service) ResubmitArticle(ctx context.Context, actor models.Principal, articleID uuid.UUID) error {
	const op = "service.lifecycle.ResubmitArticle"

	article, err := s.articleForTransition(ctx, op, articleID)
	if err != nil {
		return err
	}

	if article.AuthorID != actor.ID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.storage.TransitionArticle(ctx, articleID, models.StateRejected, models.StateDraft); err != nil {
		return s.mapTransitionErr(op, err)
	}

	return nil
}

// SubmitNewsletter — подача выпуска рассылки: draft -> pending.
func (s *Service) SubmitNewsletter(ctx context.Context, actor models.Principal, newsletterID uuid.UUID) error {
	const op = "service.lifecycle.SubmitNewsletter"

	n, err := s.newsletterForTransition(ctx, op, newsletterID)
	if err != nil {
		return err
	}

	if n.AuthorID != actor.ID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.storage.TransitionNewsletter(ctx, newsletterID, models.StateDraft, models.StatePending); err != nil {
		return s.mapTransitionErr(op, err)
	}

	return nil
}

// ApproveNewsletter — утверждение выпуска: pending -> approved, с outbox-записью.
func (s *Service) ApproveNewsletter(ctx context.Context, actor models.Principal, newsletterID uuid.UUID) error {
	const op = "service.lifecycle.ApproveNewsletter"

	n, err := s.newsletterForTransition(ctx, op, newsletterID)
	if err != nil {
		return err
	}

	if err := s.requireAuthority(ctx, op, actor, n.PublisherID); err != nil {
		return err
	}

	if err := s.storage.ApproveNewsletter(ctx, newsletterID, actor.ID, time.Now().UTC()); err != nil {
		return s.mapTransitionErr(op, err)
	}

	metrics.Approvals.WithLabelValues("newsletter").Inc()

	return nil
}

// RejectNewsletter — отклонение выпуска: pending -> rejected.
func (s *Service) RejectNewsletter(ctx context.Context, actor models.Principal, newsletterID uuid.UUID) error {
	const op = "service.lifecycle.RejectNewsletter"

	n, err := s.newsletterForTransition(ctx, op, newsletterID)
	if err != nil {
		return err
	}

	if err := s.requireAuthority(ctx, op, actor, n.PublisherID); err != nil {
		return err
	}

	if err := s.storage.TransitionNewsletter(ctx, newsletterID, models.StatePending, models.StateRejected); err != nil {
		return s.mapTransitionErr(op, err)
	}

	metrics.Rejections.WithLabelValues("newsletter").Inc()

	return nil
}

// ResubmitNewsletter — возврат отклонённого выпуска в черновик: rejected -> draft.
// Разрешён только автору; дальше обычный путь submit.
func (s *Service) ResubmitNewsletter(ctx context.Context, actor models.Principal, newsletterID uuid.UUID) error {
	const op = "service.lifecycle.ResubmitNewsletter"

	n, err := s.newsletterForTransition(ctx, op, newsletterID)
	if err != nil {
		return err
	}

	if n.AuthorID != actor.ID {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.storage.TransitionNewsletter(ctx, newsletterID, models.StateRejected, models.StateDraft); err != nil {
		return s.mapTransitionErr(op, err)
	}

	return nil
}

// requireAuthority — явная проверка полномочий: редактор действует
// только от имени закреплённых за ним изданий.
func (s *Service) requireAuthority(ctx context.Context, op string, actor models.Principal, publisherID uuid.UUID) error {
	if actor.Role != models.RoleEditor {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	ok, err := s.storage.HasAuthority(ctx, actor.ID, publisherID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		log.From(ctx).Warn("authority_check_failed",
			slog.String("op", op),
			slog.String("editor_id", actor.ID.String()),
			slog.String("publisher_id", publisherID.String()),
		)

		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	return nil
}

func (s *Service) articleForTransition(ctx context.Context, op string, id uuid.UUID) (*models.Article, error) {
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

func (s *Service) newsletterForTransition(ctx context.Context, op string, id uuid.UUID) (*models.Newsletter, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	n, err := s.storage.NewsletterByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// mapTransitionErr транслирует ошибки CAS-хранилища в сервисные.
func (s *Service) mapTransitionErr(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrWrongState):
		return fmt.Errorf("%s: %w", op, ErrInvalidTransition)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
