// models содержит доменные сущности newsroom-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя. У пользователя ровно одна роль.
type Role string

const (
	RoleReader     Role = "reader"
	RoleJournalist Role = "journalist"
	RoleEditor     Role = "editor"
)

// Valid сообщает, является ли значение одной из известных ролей.
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor:
		return true
	}

	return false
}

// User — доменная сущность пользователя.
//
// Особенности:
//   - ID — UUIDv4;
//   - Временные метки — в UTC.
type User struct {
	// ID — уникальный идентификатор пользователя.
	ID uuid.UUID
	// Username - отображаемое имя.
	Username string
	// Email - адрес для входа и доставки уведомлений.
	Email string
	// PasswordHash - bcrypt-хэш пароля.
	PasswordHash string
	// Role - роль: reader, journalist или editor.
	Role Role
	// CreatedAt - время регистрации (UTC).
	CreatedAt time.Time
	// UpdatedAt - время последнего изменения (UTC).
	UpdatedAt time.Time
}

// Principal — аутентифицированный пользователь запроса.
// Формируется транспортным слоем из access-токена и передаётся
// в сервисные операции явным аргументом.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
