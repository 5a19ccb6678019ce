package models

import (
	"time"

	"github.com/google/uuid"
)

// State — состояние жизненного цикла статьи/рассылки.
//
// Переходы:
//   - draft -> pending (submit, только автор);
//   - pending -> approved | rejected (approve/reject, только редактор
//     с полномочиями над изданием);
//   - rejected -> draft (resubmit, только автор).
//
// approved и rejected — терминальные состояния; rejected допускает
// повторный вход в draft.
type State string

const (
	StateDraft    State = "draft"
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

// Valid сообщает, является ли значение одним из известных состояний.
func (s State) Valid() bool {
	switch s {
	case StateDraft, StatePending, StateApproved, StateRejected:
		return true
	}

	return false
}

// Article — доменная сущность статьи.
//
// Инвариант: ApprovedAt и ApprovedBy заданы тогда и только тогда,
// когда State == StateApproved. Поддерживается CHECK-констрейнтом в БД
// и условным UPDATE при утверждении.
type Article struct {
	ID uuid.UUID
	// Title - заголовок.
	Title string
	// Summary - короткий тизер, попадает в текст уведомления.
	Summary string
	// Body - полный текст.
	Body string
	// AuthorID - журналист-автор.
	AuthorID uuid.UUID
	// PublisherID - издание, в которое подана статья.
	PublisherID uuid.UUID
	// CategoryID - рубрика; uuid.Nil, если не задана.
	CategoryID uuid.UUID
	// State - текущее состояние жизненного цикла.
	State State
	// ApprovedBy - редактор, утвердивший статью; uuid.Nil до утверждения.
	ApprovedBy uuid.UUID
	// ApprovedAt - время утверждения (UTC); nil до утверждения.
	ApprovedAt *time.Time
	// CreatedAt/UpdatedAt - временные метки (UTC).
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ArticleFilter — необязательные фильтры выборки статей.
// Нулевые значения полей отключают соответствующий фильтр.
type ArticleFilter struct {
	State       State
	PublisherID uuid.UUID
	AuthorID    uuid.UUID
}

// ArticlePage — страница статей со ссылкой на продолжение.
type ArticlePage struct {
	Items         []Article
	NextPageToken string
}
