package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// CreateNewsletterInput — создание черновика выпуска рассылки.
type CreateNewsletterInput struct {
	Title       string
	Summary     string
	Body        string
	PublisherID uuid.UUID
}

// CreateNewsletter — создание выпуска журналистом (state = draft).
// Правила совпадают с CreateArticle.
func (s *Service) CreateNewsletter(ctx context.Context, actor models.Principal, in CreateNewsletterInput) (*models.Newsletter, error) {
	const op = "service.newsletters.CreateNewsletter"

	if actor.Role != models.RoleJournalist {
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
	n := &models.Newsletter{
		ID:          uuid.New(),
		Title:       in.Title,
		Summary:     strings.TrimSpace(in.Summary),
		Body:        in.Body,
		AuthorID:    actor.ID,
		PublisherID: in.PublisherID,
		State:       models.StateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveNewsletter(ctx, n); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// NewsletterByID возвращает выпуск по идентификатору.
func (s *Service) NewsletterByID(ctx context.Context, id uuid.UUID) (*models.Newsletter, error) {
	const op = "service.newsletters.NewsletterByID"

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
