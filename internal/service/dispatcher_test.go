package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/notify"
	"github.com/pribylovaa/newsroom-service/mocks"
)

// recordingNotifier фиксирует доставки; failFor — адреса, для которых Send падает.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []models.Recipient
	failFor map[string]bool
}

func (n *recordingNotifier) Send(_ context.Context, r models.Recipient, _ notify.Payload) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.failFor[r.Email] {
		return errors.New("smtp unavailable")
	}

	n.sent = append(n.sent, r)
	return nil
}

func newDispatcherSvc(t *testing.T, n notify.Notifier) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, n, testCfg())
	return svc, st, ctrl
}

func TestDispatchOnce_FanOutDeduplicates(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	svc, st, ctrl := newDispatcherSvc(t, rec)
	defer ctrl.Finish()

	authorID := uuid.New()
	publisherID := uuid.New()
	article := &models.Article{
		ID:          uuid.New(),
		Title:       "Title",
		Summary:     "Summary",
		AuthorID:    authorID,
		PublisherID: publisherID,
		State:       models.StateApproved,
	}
	entry := models.OutboxEntry{ID: 1, Kind: models.OutboxArticle, ContentID: article.ID}

	// Один читатель подписан и на издание, и на автора.
	both := models.Recipient{UserID: uuid.New(), Email: "both@example.com"}
	onlyPub := models.Recipient{UserID: uuid.New(), Email: "pub@example.com"}
	onlyAuthor := models.Recipient{UserID: uuid.New(), Email: "author@example.com"}

	st.EXPECT().PendingOutbox(gomock.Any(), int32(10)).Return([]models.OutboxEntry{entry}, nil)
	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	st.EXPECT().PublisherByID(gomock.Any(), publisherID).Return(&models.Publisher{ID: publisherID, Name: "Daily"}, nil)
	st.EXPECT().PublisherSubscribers(gomock.Any(), publisherID).Return([]models.Recipient{both, onlyPub}, nil)
	st.EXPECT().JournalistSubscribers(gomock.Any(), authorID).Return([]models.Recipient{both, onlyAuthor}, nil)
	st.EXPECT().MarkDispatched(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	require.NoError(t, svc.dispatchOnce(context.Background()))

	// Ровно одно уведомление на получателя, без дублей для both.
	require.Len(t, rec.sent, 3)
	seen := map[uuid.UUID]int{}
	for _, r := range rec.sent {
		seen[r.UserID]++
	}
	require.Equal(t, 1, seen[both.UserID])
	require.Equal(t, 1, seen[onlyPub.UserID])
	require.Equal(t, 1, seen[onlyAuthor.UserID])
}

func TestDispatchOnce_DeliveryFailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{failFor: map[string]bool{"broken@example.com": true}}
	svc, st, ctrl := newDispatcherSvc(t, rec)
	defer ctrl.Finish()

	publisherID := uuid.New()
	article := &models.Article{
		ID:          uuid.New(),
		AuthorID:    uuid.New(),
		PublisherID: publisherID,
		State:       models.StateApproved,
	}
	entry := models.OutboxEntry{ID: 7, Kind: models.OutboxArticle, ContentID: article.ID}

	broken := models.Recipient{UserID: uuid.New(), Email: "broken@example.com"}
	ok := models.Recipient{UserID: uuid.New(), Email: "ok@example.com"}

	st.EXPECT().PendingOutbox(gomock.Any(), int32(10)).Return([]models.OutboxEntry{entry}, nil)
	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	st.EXPECT().PublisherByID(gomock.Any(), publisherID).Return(&models.Publisher{ID: publisherID}, nil)
	st.EXPECT().PublisherSubscribers(gomock.Any(), publisherID).Return([]models.Recipient{broken, ok}, nil)
	st.EXPECT().JournalistSubscribers(gomock.Any(), article.AuthorID).Return(nil, nil)
	// Запись помечается завершённой несмотря на частичный сбой доставки.
	st.EXPECT().MarkDispatched(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	require.NoError(t, svc.dispatchOnce(context.Background()))
	require.Len(t, rec.sent, 1)
	require.Equal(t, ok.UserID, rec.sent[0].UserID)
}

func TestDispatchOnce_ResolveErrorLeavesEntryPending(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	svc, st, ctrl := newDispatcherSvc(t, rec)
	defer ctrl.Finish()

	entry := models.OutboxEntry{ID: 3, Kind: models.OutboxArticle, ContentID: uuid.New()}

	st.EXPECT().PendingOutbox(gomock.Any(), int32(10)).Return([]models.OutboxEntry{entry}, nil)
	st.EXPECT().ArticleByID(gomock.Any(), entry.ContentID).Return(nil, errors.New("db down"))
	// MarkDispatched не вызывается: запись будет повторена на следующем проходе.

	require.NoError(t, svc.dispatchOnce(context.Background()))
	require.Empty(t, rec.sent)
}

func TestDispatchOnce_Newsletter(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	svc, st, ctrl := newDispatcherSvc(t, rec)
	defer ctrl.Finish()

	publisherID := uuid.New()
	n := &models.Newsletter{
		ID:          uuid.New(),
		Title:       "Weekly",
		AuthorID:    uuid.New(),
		PublisherID: publisherID,
		State:       models.StateApproved,
	}
	entry := models.OutboxEntry{ID: 4, Kind: models.OutboxNewsletter, ContentID: n.ID}

	sub := models.Recipient{UserID: uuid.New(), Email: "r@example.com"}

	st.EXPECT().PendingOutbox(gomock.Any(), int32(10)).Return([]models.OutboxEntry{entry}, nil)
	st.EXPECT().NewsletterByID(gomock.Any(), n.ID).Return(n, nil)
	st.EXPECT().PublisherByID(gomock.Any(), publisherID).Return(&models.Publisher{ID: publisherID}, nil)
	st.EXPECT().PublisherSubscribers(gomock.Any(), publisherID).Return([]models.Recipient{sub}, nil)
	st.EXPECT().JournalistSubscribers(gomock.Any(), n.AuthorID).Return(nil, nil)
	st.EXPECT().MarkDispatched(gomock.Any(), int64(4), gomock.Any()).Return(nil)

	require.NoError(t, svc.dispatchOnce(context.Background()))
	require.Len(t, rec.sent, 1)
}

func TestStartDispatcher_StopsOnContext(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	svc, st, ctrl := newDispatcherSvc(t, rec)
	defer ctrl.Finish()

	st.EXPECT().PendingOutbox(gomock.Any(), int32(10)).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- svc.StartDispatcher(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
