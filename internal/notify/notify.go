// notify определяет контракт канала доставки уведомлений.
//
// Сервис рассматривает канал как fire-and-forget: ошибка доставки
// конкретному получателю логируется и учитывается в метриках, но
// никогда не откатывает утверждение и не прерывает рассылку остальным.
package notify

import (
	"context"

	"github.com/pribylovaa/newsroom-service/internal/models"
)

// Payload — содержимое уведомления о новой публикации.
type Payload struct {
	// Title - заголовок публикации.
	Title string
	// Summary - тизер.
	Summary string
	// Link - абсолютная ссылка на публикацию.
	Link string
	// PublisherName - имя издания.
	PublisherName string
}

// Notifier — внешний канал доставки (email или эквивалент).
type Notifier interface {
	// Send доставляет одно уведомление одному получателю.
	Send(ctx context.Context, recipient models.Recipient, payload Payload) error
}
