package models

import (
	"time"

	"github.com/google/uuid"
)

// Newsletter — выпуск рассылки. Жизненный цикл совпадает со статьёй
// (см. State), рубрики нет.
type Newsletter struct {
	ID          uuid.UUID
	Title       string
	Summary     string
	Body        string
	AuthorID    uuid.UUID
	PublisherID uuid.UUID
	State       State
	ApprovedBy  uuid.UUID
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
