package models

import (
	"time"

	"github.com/google/uuid"
)

// Publisher — издание. Редакторы с полномочиями над изданием
// утверждают его материалы (см. storage.HasAuthority).
type Publisher struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	CreatedAt   time.Time
}

// PublisherStaff — состав издания: закреплённые редакторы и штатные журналисты.
type PublisherStaff struct {
	Editors     []uuid.UUID
	Journalists []uuid.UUID
}

// Category — рубрика статей.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// ListOptions — параметры выборки списков доменных сущностей.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}
