package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
	"github.com/pribylovaa/newsroom-service/pkg/log"
)

// Subscribe — подписка читателя на издание или журналиста.
// Идемпотентна: повторная подписка на ту же цель — no-op, не ошибка.
//
// Ошибки:
//   - ErrUnauthorized — вызывающий не читатель;
//   - ErrInvalidArgument — неизвестный вид цели или нулевой ID;
//   - ErrNotFound — цель не существует (или для журналиста — не журналист).
func (s *Service) Subscribe(ctx context.Context, actor models.Principal, target models.Target) error {
	const op = "service.subscriptions.Subscribe"

	if actor.Role != models.RoleReader {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.checkTarget(ctx, op, target); err != nil {
		return err
	}

	sub := &models.Subscription{
		ID:        uuid.New(),
		ReaderID:  actor.ID,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.AddSubscription(ctx, sub); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("subscribed",
		slog.String("op", op),
		slog.String("reader_id", actor.ID.String()),
		slog.String("target_kind", string(target.Kind)),
		slog.String("target_id", target.ID.String()),
	)

	return nil
}

// Unsubscribe — отписка. Отсутствие подписки — no-op, не ошибка.
func (s *Service) Unsubscribe(ctx context.Context, actor models.Principal, target models.Target) error {
	const op = "service.subscriptions.Unsubscribe"

	if actor.Role != models.RoleReader {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if target.ID == uuid.Nil || (target.Kind != models.TargetPublisher && target.Kind != models.TargetJournalist) {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.RemoveSubscription(ctx, actor.ID, target); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListSubscriptions возвращает подписки читателя.
func (s *Service) ListSubscriptions(ctx context.Context, actor models.Principal) ([]models.Subscription, error) {
	const op = "service.subscriptions.ListSubscriptions"

	if actor.Role != models.RoleReader {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	items, err := s.storage.ListByReader(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// checkTarget проверяет вид и существование цели подписки.
func (s *Service) checkTarget(ctx context.Context, op string, target models.Target) error {
	if target.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch target.Kind {
	case models.TargetPublisher:
		if _, err := s.storage.PublisherByID(ctx, target.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}
	case models.TargetJournalist:
		user, err := s.storage.UserByID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		// Подписка осмысленна только на журналиста.
		if user.Role != models.RoleJournalist {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
	default:
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return nil
}
