package notify

import (
	"context"
	"log/slog"

	"github.com/pribylovaa/newsroom-service/internal/models"
)

// SlogNotifier — реализация Notifier поверх структурного лога.
// Используется в local/dev окружениях вместо реального email-транспорта.
type SlogNotifier struct {
	log *slog.Logger
}

// NewSlogNotifier создаёт лог-нотификатор. При l == nil берётся slog.Default().
func NewSlogNotifier(l *slog.Logger) *SlogNotifier {
	if l == nil {
		l = slog.Default()
	}

	return &SlogNotifier{log: l}
}

// Send пишет уведомление в лог и всегда завершается успешно.
func (n *SlogNotifier) Send(_ context.Context, recipient models.Recipient, payload Payload) error {
	n.log.Info("notification_sent",
		slog.String("recipient", recipient.Email),
		slog.String("title", payload.Title),
		slog.String("publisher", payload.PublisherName),
		slog.String("link", payload.Link),
	)

	return nil
}

var _ Notifier = (*SlogNotifier)(nil)
