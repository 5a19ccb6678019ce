package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

// Интеграционные тесты пакета postgres:
// - поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяют все миграции из ./migrations;
// - проверяют CAS-переходы, транзакцию утверждения с outbox-записью,
//   идемпотентность подписок и курсорную пагинацию.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL, применяет миграции
// и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// Применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, m := range []string{
		"1_init_users.up.sql",
		"2_init_content.up.sql",
		"3_init_subscriptions.up.sql",
		"4_init_outbox.up.sql",
	} {
		_, err = pool.Exec(ctx, readMigration(t, m))
		require.NoError(t, err, "apply migration %s", m)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// seedUser — фикстура пользователя с заданной ролью.
func seedUser(t *testing.T, st *Storage, role models.Role) *models.User {
	t.Helper()
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		Username:     "u-" + uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

// seedPublisher — фикстура издания; создатель-редактор заводится здесь же,
// поскольку издание сохраняется вместе с закреплением создателя.
func seedPublisher(t *testing.T, st *Storage) *models.Publisher {
	t.Helper()
	creator := seedUser(t, st, models.RoleEditor)
	p := &models.Publisher{
		ID:        uuid.New(),
		Name:      "pub-" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.SavePublisher(context.Background(), p, creator.ID))
	return p
}

// seedArticle — фикстура статьи в состоянии draft.
func seedArticle(t *testing.T, st *Storage, authorID, publisherID uuid.UUID) *models.Article {
	t.Helper()
	now := time.Now().UTC()
	a := &models.Article{
		ID:          uuid.New(),
		Title:       "title",
		Body:        "body",
		AuthorID:    authorID,
		PublisherID: publisherID,
		State:       models.StateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.SaveArticle(context.Background(), a))
	return a
}

func TestIntegration_SaveUser_UniqueEmail_CaseInsensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := seedUser(t, st, models.RoleReader)

	// Дубликат email в другом регистре: CITEXT делает сравнение регистронезависимым.
	dup := *u
	dup.ID = uuid.New()
	dup.Username = "other-" + uuid.NewString()
	dup.Email = strings.ToUpper(u.Email)

	err := st.SaveUser(ctx, &dup)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_TransitionArticle_CAS(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := seedUser(t, st, models.RoleJournalist)
	pub := seedPublisher(t, st)
	a := seedArticle(t, st, author.ID, pub.ID)

	// draft -> pending проходит.
	require.NoError(t, st.TransitionArticle(ctx, a.ID, models.StateDraft, models.StatePending))

	// Повторный draft -> pending — проигранный CAS.
	err := st.TransitionArticle(ctx, a.ID, models.StateDraft, models.StatePending)
	require.ErrorIs(t, err, storage.ErrWrongState)

	// Несуществующая статья — ErrNotFound, не ErrWrongState.
	err = st.TransitionArticle(ctx, uuid.New(), models.StateDraft, models.StatePending)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ApproveArticle_StampsAndEnqueuesOnce(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := seedUser(t, st, models.RoleJournalist)
	editor := seedUser(t, st, models.RoleEditor)
	pub := seedPublisher(t, st)
	a := seedArticle(t, st, author.ID, pub.ID)

	require.NoError(t, st.TransitionArticle(ctx, a.ID, models.StateDraft, models.StatePending))

	at := time.Now().UTC()
	require.NoError(t, st.ApproveArticle(ctx, a.ID, editor.ID, at))

	got, err := st.ArticleByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, models.StateApproved, got.State)
	require.Equal(t, editor.ID, got.ApprovedBy)
	require.NotNil(t, got.ApprovedAt)
	require.WithinDuration(t, at, *got.ApprovedAt, time.Second)

	// Ровно одна outbox-запись.
	pending, err := st.PendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, models.OutboxArticle, pending[0].Kind)
	require.Equal(t, a.ID, pending[0].ContentID)

	// Повторное утверждение — проигранный CAS, второй записи не появляется.
	err = st.ApproveArticle(ctx, a.ID, editor.ID, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrWrongState)

	pending, err = st.PendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestIntegration_MarkDispatched_Idempotent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := seedUser(t, st, models.RoleJournalist)
	editor := seedUser(t, st, models.RoleEditor)
	pub := seedPublisher(t, st)
	a := seedArticle(t, st, author.ID, pub.ID)

	require.NoError(t, st.TransitionArticle(ctx, a.ID, models.StateDraft, models.StatePending))
	require.NoError(t, st.ApproveArticle(ctx, a.ID, editor.ID, time.Now().UTC()))

	pending, err := st.PendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, st.MarkDispatched(ctx, pending[0].ID, time.Now().UTC()))
	// Повторная пометка — no-op.
	require.NoError(t, st.MarkDispatched(ctx, pending[0].ID, time.Now().UTC()))

	pending, err = st.PendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestIntegration_UpdateDraft_OnlyDraft(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := seedUser(t, st, models.RoleJournalist)
	pub := seedPublisher(t, st)
	a := seedArticle(t, st, author.ID, pub.ID)

	a.Title = "edited"
	a.UpdatedAt = time.Now().UTC()
	require.NoError(t, st.UpdateDraft(ctx, a))

	got, err := st.ArticleByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "edited", got.Title)

	// После submit правка не проходит.
	require.NoError(t, st.TransitionArticle(ctx, a.ID, models.StateDraft, models.StatePending))
	err = st.UpdateDraft(ctx, a)
	require.ErrorIs(t, err, storage.ErrWrongState)
}

func TestIntegration_Subscriptions_IdempotentAndFanOutSets(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	reader := seedUser(t, st, models.RoleReader)
	journalist := seedUser(t, st, models.RoleJournalist)
	pub := seedPublisher(t, st)

	subPub := &models.Subscription{
		ID:        uuid.New(),
		ReaderID:  reader.ID,
		Target:    models.Target{Kind: models.TargetPublisher, ID: pub.ID},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.AddSubscription(ctx, subPub))

	// Повтор — no-op, не ошибка.
	dup := *subPub
	dup.ID = uuid.New()
	require.NoError(t, st.AddSubscription(ctx, &dup))

	subJour := &models.Subscription{
		ID:        uuid.New(),
		ReaderID:  reader.ID,
		Target:    models.Target{Kind: models.TargetJournalist, ID: journalist.ID},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.AddSubscription(ctx, subJour))

	list, err := st.ListByReader(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	recipients, err := st.PublisherSubscribers(ctx, pub.ID)
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	require.Equal(t, reader.ID, recipients[0].UserID)
	require.Equal(t, reader.Email, recipients[0].Email)

	recipients, err = st.JournalistSubscribers(ctx, journalist.ID)
	require.NoError(t, err)
	require.Len(t, recipients, 1)

	// Отписка и повторная отписка — обе успешны.
	require.NoError(t, st.RemoveSubscription(ctx, reader.ID, subPub.Target))
	require.NoError(t, st.RemoveSubscription(ctx, reader.ID, subPub.Target))

	list, err = st.ListByReader(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestIntegration_SavePublisher_GrantsCreator(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	creator := seedUser(t, st, models.RoleEditor)

	p := &models.Publisher{
		ID:        uuid.New(),
		Name:      "pub-" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.SavePublisher(ctx, p, creator.ID))

	// Создатель закреплён сразу: иначе некому было бы утверждать.
	ok, err := st.HasAuthority(ctx, creator.ID, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Несуществующий редактор — транзакция не проходит, издания нет.
	orphan := &models.Publisher{
		ID:        uuid.New(),
		Name:      "pub-" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	err = st.SavePublisher(ctx, orphan, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.PublisherByID(ctx, orphan.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_AuthorityAndStaff(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	editor := seedUser(t, st, models.RoleEditor)
	journalist := seedUser(t, st, models.RoleJournalist)
	pub := seedPublisher(t, st)

	ok, err := st.HasAuthority(ctx, editor.ID, pub.ID)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.GrantAuthority(ctx, editor.ID, pub.ID))
	// Повторное закрепление — no-op.
	require.NoError(t, st.GrantAuthority(ctx, editor.ID, pub.ID))

	ok, err = st.HasAuthority(ctx, editor.ID, pub.ID)
	require.NoError(t, err)
	require.True(t, ok)

	pubs, err := st.EditorPublishers(ctx, editor.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{pub.ID}, pubs)

	// Штат: зачисление идемпотентно, состав читается с обеих сторон.
	require.NoError(t, st.AddStaffJournalist(ctx, pub.ID, journalist.ID))
	require.NoError(t, st.AddStaffJournalist(ctx, pub.ID, journalist.ID))

	staff, err := st.StaffJournalists(ctx, pub.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{journalist.ID}, staff)

	// Закреплённых редакторов двое: создатель и editor.
	editors, err := st.PublisherEditors(ctx, pub.ID)
	require.NoError(t, err)
	require.Len(t, editors, 2)
	require.Contains(t, editors, editor.ID)

	// Ссылка на несуществующее издание — ErrNotFound.
	err = st.GrantAuthority(ctx, editor.ID, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.AddStaffJournalist(ctx, uuid.New(), journalist.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ListArticles_CursorPagination(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := seedUser(t, st, models.RoleJournalist)
	pub := seedPublisher(t, st)

	// 5 статей с нарастающим created_at.
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		a := &models.Article{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("title-%d", i),
			Body:        "body",
			AuthorID:    author.ID,
			PublisherID: pub.ID,
			State:       models.StateDraft,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, st.SaveArticle(ctx, a))
	}

	// Первая страница: 2 новейшие.
	page1, err := st.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	require.NotEmpty(t, page1.NextPageToken)
	require.Equal(t, "title-4", page1.Items[0].Title)
	require.Equal(t, "title-3", page1.Items[1].Title)

	page2, err := st.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{Limit: 2, PageToken: page1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	require.Equal(t, "title-2", page2.Items[0].Title)
	require.Equal(t, "title-1", page2.Items[1].Title)

	page3, err := st.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{Limit: 2, PageToken: page2.NextPageToken})
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)
	require.Empty(t, page3.NextPageToken)

	// Битый токен.
	_, err = st.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{Limit: 2, PageToken: "%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)

	// Фильтр по автору.
	byAuthor, err := st.ListArticles(ctx, models.ArticleFilter{AuthorID: author.ID}, models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, byAuthor.Items, 5)

	byOther, err := st.ListArticles(ctx, models.ArticleFilter{AuthorID: uuid.New()}, models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, byOther.Items)
}
