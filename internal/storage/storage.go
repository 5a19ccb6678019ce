// storage определяет контракты доступа к БД для newsroom-service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/newsroom-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (email, имя издания и т.п.).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCursor - битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrWrongState — условное обновление не прошло: запись существует,
	// но её текущее состояние не совпало с ожидаемым (проигранный CAS).
	ErrWrongState = errors.New("wrong state")
)

// UserStorage описывает операции над пользователями и полномочиями редакторов.
type UserStorage interface {
	// SaveUser сохраняет нового пользователя.
	// ErrAlreadyExists — занят email или username.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByID возвращает пользователя по идентификатору; ErrNotFound, если нет.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByEmail возвращает пользователя по email; ErrNotFound, если нет.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// HasAuthority сообщает, закреплён ли редактор за изданием.
	HasAuthority(ctx context.Context, editorID, publisherID uuid.UUID) (bool, error)
	// GrantAuthority закрепляет редактора за изданием. Повторное закрепление —
	// no-op. ErrNotFound, если редактора или издания нет.
	GrantAuthority(ctx context.Context, editorID, publisherID uuid.UUID) error
	// EditorPublishers возвращает издания, закреплённые за редактором.
	EditorPublishers(ctx context.Context, editorID uuid.UUID) ([]uuid.UUID, error)
	// PublisherEditors возвращает редакторов, закреплённых за изданием.
	PublisherEditors(ctx context.Context, publisherID uuid.UUID) ([]uuid.UUID, error)
}

// ContentStorage описывает операции над изданиями и рубриками.
type ContentStorage interface {
	// SavePublisher сохраняет издание и в той же транзакции закрепляет
	// за ним редактора-создателя (иначе у нового издания не было бы никого,
	// кто вправе утверждать материалы). ErrAlreadyExists — занято имя.
	SavePublisher(ctx context.Context, p *models.Publisher, editorID uuid.UUID) error
	// PublisherByID возвращает издание; ErrNotFound, если нет.
	PublisherByID(ctx context.Context, id uuid.UUID) (*models.Publisher, error)
	// ListPublishers возвращает все издания, отсортированные по имени.
	ListPublishers(ctx context.Context) ([]models.Publisher, error)
	// AddStaffJournalist зачисляет журналиста в штат издания. Повтор — no-op.
	// ErrNotFound, если журналиста или издания нет.
	AddStaffJournalist(ctx context.Context, publisherID, journalistID uuid.UUID) error
	// StaffJournalists возвращает журналистов штата издания.
	StaffJournalists(ctx context.Context, publisherID uuid.UUID) ([]uuid.UUID, error)
	// SaveCategory сохраняет рубрику. ErrAlreadyExists — занято имя.
	SaveCategory(ctx context.Context, c *models.Category) error
	// ListCategories возвращает все рубрики, отсортированные по имени.
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// ArticleStorage описывает операции над статьями.
type ArticleStorage interface {
	// SaveArticle сохраняет новую статью (state = draft).
	SaveArticle(ctx context.Context, a *models.Article) error
	// UpdateDraft обновляет title/summary/body/category статьи;
	// условие — запись в состоянии draft. ErrNotFound, если статьи нет;
	// ErrWrongState, если статья уже не черновик.
	UpdateDraft(ctx context.Context, a *models.Article) error
	// ArticleByID возвращает статью; ErrNotFound, если нет.
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	// ListArticles возвращает страницу статей по фильтру,
	// отсортированных по created_at DESC, id DESC.
	// Некорректный page_token -> ErrInvalidCursor.
	ListArticles(ctx context.Context, f models.ArticleFilter, opts models.ListOptions) (*models.ArticlePage, error)
	// TransitionArticle — атомарный CAS state: from -> to.
	// ErrNotFound, если статьи нет; ErrWrongState, если текущее состояние != from.
	TransitionArticle(ctx context.Context, id uuid.UUID, from, to models.State) error
	// ApproveArticle — транзакция утверждения: условный UPDATE
	// (state = pending -> approved, approved_by/approved_at) плюс вставка
	// outbox-записи. ErrNotFound / ErrWrongState — как у TransitionArticle.
	ApproveArticle(ctx context.Context, id, editorID uuid.UUID, at time.Time) error
}

// NewsletterStorage описывает операции над выпусками рассылки.
type NewsletterStorage interface {
	// SaveNewsletter сохраняет новый выпуск (state = draft).
	SaveNewsletter(ctx context.Context, n *models.Newsletter) error
	// NewsletterByID возвращает выпуск; ErrNotFound, если нет.
	NewsletterByID(ctx context.Context, id uuid.UUID) (*models.Newsletter, error)
	// TransitionNewsletter — атомарный CAS state: from -> to (семантика — как у статей).
	TransitionNewsletter(ctx context.Context, id uuid.UUID, from, to models.State) error
	// ApproveNewsletter — транзакция утверждения выпуска с outbox-записью.
	ApproveNewsletter(ctx context.Context, id, editorID uuid.UUID, at time.Time) error
}

// SubscriptionStorage описывает реестр подписок.
type SubscriptionStorage interface {
	// AddSubscription добавляет подписку. Повтор той же пары
	// (reader, target) — no-op (ON CONFLICT DO NOTHING).
	AddSubscription(ctx context.Context, s *models.Subscription) error
	// RemoveSubscription удаляет подписку; отсутствие записи — no-op.
	RemoveSubscription(ctx context.Context, readerID uuid.UUID, target models.Target) error
	// ListByReader возвращает подписки читателя.
	ListByReader(ctx context.Context, readerID uuid.UUID) ([]models.Subscription, error)
	// PublisherSubscribers возвращает читателей, подписанных на издание.
	PublisherSubscribers(ctx context.Context, publisherID uuid.UUID) ([]models.Recipient, error)
	// JournalistSubscribers возвращает читателей, подписанных на журналиста.
	JournalistSubscribers(ctx context.Context, journalistID uuid.UUID) ([]models.Recipient, error)
}

// OutboxStorage описывает чтение/завершение исходящих fan-out записей.
type OutboxStorage interface {
	// PendingOutbox возвращает до limit незавершённых записей (dispatched_at IS NULL),
	// старые — первыми.
	PendingOutbox(ctx context.Context, limit int32) ([]models.OutboxEntry, error)
	// MarkDispatched помечает запись завершённой. Повторная пометка — no-op.
	MarkDispatched(ctx context.Context, id int64, at time.Time) error
}

// Storage задаёт контракт доступа к хранилищу для newsroom-сервиса.
type Storage interface {
	UserStorage
	ContentStorage
	ArticleStorage
	NewsletterStorage
	SubscriptionStorage
	OutboxStorage
	Close()
}
