// service содержит бизнес-логику newsroom-сервиса: жизненный цикл
// статей и рассылок (draft -> pending -> approved/rejected), реестр
// подписок и диспетчер уведомлений поверх outbox.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Действующий пользователь передаётся в операции явным аргументом
//     (models.Principal) — никакого ambient-состояния запроса.
//   - Ошибки возвращаются сентинелами и далее маппятся транспортом
//     на HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/newsroom-service/internal/config"
	"github.com/pribylovaa/newsroom-service/internal/notify"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized — у действующего пользователя нет роли/полномочий
	// для запрошенной операции. Транспорт: 403.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition — запрошенный переход невозможен из текущего
	// состояния, включая проигранные CAS-гонки. Транспорт: 409.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrAlreadyExists — конфликт уникальности (email, имя издания).
	// Транспорт: 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден.
	// Транспорт: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — access-токен некорректен по формату/подписи.
	// Транспорт: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия access-токена истёк.
	// Транспорт: 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrInternal — прочие ошибки стораджа/БД/контекста.
	// Транспорт: 500.
	ErrInternal = errors.New("internal error")
)

// Service — описывает бизнес-логику newsroom-service.
type Service struct {
	storage  storage.Storage
	notifier notify.Notifier
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, notifier notify.Notifier, cfg config.Config) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		cfg:      cfg,
	}
}
