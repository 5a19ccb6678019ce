package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/metrics"
	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/notify"
	"github.com/pribylovaa/newsroom-service/pkg/log"
)

// Диспетчер уведомлений.
//
// Fan-out выполняется после коммита утверждающей транзакции: диспетчер
// читает незавершённые outbox-записи, вычисляет множество получателей
// (подписчики издания ∪ подписчики автора, без дублей) и отправляет
// по одному уведомлению каждому. Ошибка доставки одному получателю
// логируется и учитывается в метриках, но не прерывает рассылку
// остальным и не откатывает утверждение.

// StartDispatcher запускает периодическую обработку outbox.
//
// Особенности:
//   - период и размер пачки — из cfg.Notify;
//   - останавливается по ctx.
func (s *Service) StartDispatcher(ctx context.Context) error {
	const op = "service.dispatcher.StartDispatcher"

	if s.notifier == nil {
		return fmt.Errorf("%s: notifier is not configured", op)
	}

	interval := s.cfg.Notify.Interval

	lg := log.From(ctx)
	lg.Info("dispatcher_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
		slog.Int("batch_size", int(s.cfg.Notify.BatchSize)),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := s.dispatchOnce(ctx); err != nil {
		lg.Warn("dispatch_tick_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			lg.Info("dispatcher_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			if err := s.dispatchOnce(ctx); err != nil {
				lg.Warn("dispatch_tick_error",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}
}

// dispatchOnce — один проход: чтение пачки outbox, рассылка, пометка завершения.
func (s *Service) dispatchOnce(ctx context.Context) error {
	const op = "service.dispatcher.dispatchOnce"

	entries, err := s.storage.PendingOutbox(ctx, s.cfg.Notify.BatchSize)
	if err != nil {
		return fmt.Errorf("%s: pending_outbox: %w", op, err)
	}

	for _, entry := range entries {
		if err := s.dispatchEntry(ctx, entry); err != nil {
			// Запись останется незавершённой и будет повторена на следующем
			// проходе; доставка — at-least-once.
			log.From(ctx).Warn("dispatch_entry_error",
				slog.String("op", op),
				slog.Int64("outbox_id", entry.ID),
				slog.String("err", err.Error()),
			)
			continue
		}

		if err := s.storage.MarkDispatched(ctx, entry.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("%s: mark_dispatched: %w", op, err)
		}
	}

	return nil
}

// dispatchEntry — рассылка по одной outbox-записи.
func (s *Service) dispatchEntry(ctx context.Context, entry models.OutboxEntry) error {
	const op = "service.dispatcher.dispatchEntry"

	payload, authorID, publisherID, err := s.resolveContent(ctx, entry)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	recipients, err := s.computeRecipients(ctx, publisherID, authorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg := log.From(ctx)
	var delivered, failed int

	for _, r := range recipients {
		if err := s.notifier.Send(ctx, r, payload); err != nil {
			failed++
			metrics.NotificationFailures.Inc()
			lg.Warn("notification_delivery_failed",
				slog.String("op", op),
				slog.Int64("outbox_id", entry.ID),
				slog.String("recipient", r.Email),
				slog.String("err", err.Error()),
			)
			continue
		}

		delivered++
		metrics.NotificationsSent.Inc()
	}

	lg.Info("fanout_done",
		slog.String("op", op),
		slog.Int64("outbox_id", entry.ID),
		slog.String("content_id", entry.ContentID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("delivered", delivered),
		slog.Int("failed", failed),
	)

	return nil
}

// resolveContent собирает payload уведомления по виду контента.
func (s *Service) resolveContent(ctx context.Context, entry models.OutboxEntry) (notify.Payload, uuid.UUID, uuid.UUID, error) {
	var title, summary, link string
	var authorID, publisherID uuid.UUID

	switch entry.Kind {
	case models.OutboxArticle:
		article, err := s.storage.ArticleByID(ctx, entry.ContentID)
		if err != nil {
			return notify.Payload{}, uuid.Nil, uuid.Nil, err
		}

		title, summary = article.Title, article.Summary
		authorID, publisherID = article.AuthorID, article.PublisherID
		link = fmt.Sprintf("%s/articles/%s", s.cfg.Notify.SiteURL, article.ID)
	case models.OutboxNewsletter:
		n, err := s.storage.NewsletterByID(ctx, entry.ContentID)
		if err != nil {
			return notify.Payload{}, uuid.Nil, uuid.Nil, err
		}

		title, summary = n.Title, n.Summary
		authorID, publisherID = n.AuthorID, n.PublisherID
		link = fmt.Sprintf("%s/newsletters/%s", s.cfg.Notify.SiteURL, n.ID)
	default:
		return notify.Payload{}, uuid.Nil, uuid.Nil, fmt.Errorf("unknown outbox kind %q", entry.Kind)
	}

	publisher, err := s.storage.PublisherByID(ctx, publisherID)
	if err != nil {
		return notify.Payload{}, uuid.Nil, uuid.Nil, err
	}

	return notify.Payload{
		Title:         title,
		Summary:       summary,
		Link:          link,
		PublisherName: publisher.Name,
	}, authorID, publisherID, nil
}

// computeRecipients — подписчики издания ∪ подписчики автора, без дублей.
func (s *Service) computeRecipients(ctx context.Context, publisherID, authorID uuid.UUID) ([]models.Recipient, error) {
	byPublisher, err := s.storage.PublisherSubscribers(ctx, publisherID)
	if err != nil {
		return nil, err
	}

	byAuthor, err := s.storage.JournalistSubscribers(ctx, authorID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(byPublisher)+len(byAuthor))
	recipients := make([]models.Recipient, 0, len(byPublisher)+len(byAuthor))

	for _, r := range byPublisher {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		recipients = append(recipients, r)
	}

	for _, r := range byAuthor {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		recipients = append(recipients, r)
	}

	return recipients, nil
}
