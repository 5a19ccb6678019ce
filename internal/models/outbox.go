package models

import (
	"time"

	"github.com/google/uuid"
)

// OutboxKind — вид контента, по которому будет выполнен fan-out.
type OutboxKind string

const (
	OutboxArticle    OutboxKind = "article"
	OutboxNewsletter OutboxKind = "newsletter"
)

// OutboxEntry — запись исходящего fan-out.
//
// Вставляется в одной транзакции с утверждающим UPDATE, поэтому
// на каждый успешный переход pending->approved приходится ровно одна
// запись (уникальный индекс по (kind, content_id)). Диспетчер читает
// незавершённые записи и помечает их dispatched_at после рассылки.
type OutboxEntry struct {
	ID         int64
	Kind       OutboxKind
	ContentID  uuid.UUID
	EnqueuedAt time.Time
	// DispatchedAt - nil, пока fan-out не выполнен.
	DispatchedAt *time.Time
}
