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

// CreatePublisher — регистрация издания. Доступна только редакторам.
// Создатель автоматически закрепляется за изданием, поэтому у нового
// издания сразу есть редактор, способный утверждать материалы;
// остальных он добавляет через GrantAuthority.
func (s *Service) CreatePublisher(ctx context.Context, actor models.Principal, name, description, website string) (*models.Publisher, error) {
	const op = "service.content.CreatePublisher"

	if actor.Role != models.RoleEditor {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p := &models.Publisher{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Website:     strings.TrimSpace(website),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.storage.SavePublisher(ctx, p, actor.ID); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// GrantAuthority — закрепление ещё одного редактора за изданием.
// Доступно редактору, уже закреплённому за этим изданием. Повторное
// закрепление — no-op.
func (s *Service) GrantAuthority(ctx context.Context, actor models.Principal, publisherID, editorID uuid.UUID) error {
	const op = "service.content.GrantAuthority"

	if err := s.requireAuthority(ctx, op, actor, publisherID); err != nil {
		return err
	}

	if err := s.requireRole(ctx, op, editorID, models.RoleEditor); err != nil {
		return err
	}

	if err := s.storage.GrantAuthority(ctx, editorID, publisherID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddStaffJournalist — зачисление журналиста в штат издания.
// Доступно редактору с полномочиями над изданием. Повтор — no-op.
func (s *Service) AddStaffJournalist(ctx context.Context, actor models.Principal, publisherID, journalistID uuid.UUID) error {
	const op = "service.content.AddStaffJournalist"

	if err := s.requireAuthority(ctx, op, actor, publisherID); err != nil {
		return err
	}

	if err := s.requireRole(ctx, op, journalistID, models.RoleJournalist); err != nil {
		return err
	}

	if err := s.storage.AddStaffJournalist(ctx, publisherID, journalistID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PublisherStaff возвращает состав издания: редакторов и штатных журналистов.
func (s *Service) PublisherStaff(ctx context.Context, publisherID uuid.UUID) (*models.PublisherStaff, error) {
	const op = "service.content.PublisherStaff"

	if publisherID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PublisherByID(ctx, publisherID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	editors, err := s.storage.PublisherEditors(ctx, publisherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	journalists, err := s.storage.StaffJournalists(ctx, publisherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PublisherStaff{Editors: editors, Journalists: journalists}, nil
}

// ManagedPublishers возвращает издания, закреплённые за редактором-актором.
func (s *Service) ManagedPublishers(ctx context.Context, actor models.Principal) ([]uuid.UUID, error) {
	const op = "service.content.ManagedPublishers"

	if actor.Role != models.RoleEditor {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	ids, err := s.storage.EditorPublishers(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// requireRole проверяет, что целевой пользователь существует и имеет
// ожидаемую роль; несоответствие роли — ErrInvalidArgument.
func (s *Service) requireRole(ctx context.Context, op string, userID uuid.UUID, want models.Role) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	u, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if u.Role != want {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return nil
}

// ListPublishers возвращает все издания.
func (s *Service) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	const op = "service.content.ListPublishers"

	items, err := s.storage.ListPublishers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CreateCategory — создание рубрики. Доступна только редакторам.
func (s *Service) CreateCategory(ctx context.Context, actor models.Principal, name, description string) (*models.Category, error) {
	const op = "service.content.CreateCategory"

	if actor.Role != models.RoleEditor {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	c := &models.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	if err := s.storage.SaveCategory(ctx, c); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// ListCategories возвращает все рубрики.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "service.content.ListCategories"

	items, err := s.storage.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
