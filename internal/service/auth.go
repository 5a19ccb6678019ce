package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// RegisterUser регистрирует нового пользователя с указанной ролью.
//
// Валидация:
//   - email нормализуется и проверяется по RFC 5322;
//   - username после TrimSpace не пуст;
//   - role — одна из reader/journalist/editor;
//   - пароль — не короче 8 символов.
//
// Ошибки:
//   - ErrInvalidArgument — битые входные данные;
//   - ErrAlreadyExists — занят email или username.
func (s *Service) RegisterUser(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	const op = "service.auth.RegisterUser"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        normEmail,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// LoginUser выполняет вход по email+пароль и возвращает access-токен.
func (s *Service) LoginUser(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "service.auth.LoginUser"

	normEmail, err := validateEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.generateAccessToken(user, time.Now().UTC())
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}

// validateEmail нормализует и проверяет формат email.
func validateEmail(email string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(email))
	if norm == "" {
		return "", fmt.Errorf("empty email")
	}

	addr, err := mail.ParseAddress(norm)
	if err != nil || addr.Address != norm {
		return "", fmt.Errorf("invalid email")
	}

	return norm, nil
}
