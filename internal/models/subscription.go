package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetKind — вид цели подписки.
type TargetKind string

const (
	TargetPublisher  TargetKind = "publisher"
	TargetJournalist TargetKind = "journalist"
)

// Target — цель подписки: ровно одно из издание/журналист.
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

// Subscription — подписка читателя на издание или журналиста.
// Уникальность пары (reader, target) обеспечивается частичными
// уникальными индексами в БД; повторная подписка — no-op.
type Subscription struct {
	ID        uuid.UUID
	ReaderID  uuid.UUID
	Target    Target
	CreatedAt time.Time
}

// Recipient — получатель уведомления, вычисленный из подписок.
type Recipient struct {
	UserID   uuid.UUID
	Email    string
	Username string
}
