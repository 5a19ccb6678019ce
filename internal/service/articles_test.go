package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

func TestCreateArticle_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	journalist := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}
	publisherID := uuid.New()

	st.EXPECT().PublisherByID(gomock.Any(), publisherID).Return(&models.Publisher{ID: publisherID}, nil)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Article) error {
			require.Equal(t, models.StateDraft, a.State)
			require.Equal(t, journalist.ID, a.AuthorID)
			return nil
		})

	article, err := svc.CreateArticle(context.Background(), journalist, CreateArticleInput{
		Title:       "  Title  ",
		Body:        "Body",
		PublisherID: publisherID,
	})
	require.NoError(t, err)
	require.Equal(t, "Title", article.Title)
	require.Equal(t, models.StateDraft, article.State)
}

func TestCreateArticle_NotJournalist(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	reader := models.Principal{ID: uuid.New(), Role: models.RoleReader}

	_, err := svc.CreateArticle(context.Background(), reader, CreateArticleInput{
		Title:       "Title",
		Body:        "Body",
		PublisherID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateArticle_UnknownPublisher(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	journalist := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}
	publisherID := uuid.New()

	st.EXPECT().PublisherByID(gomock.Any(), publisherID).Return(nil, storage.ErrNotFound)

	_, err := svc.CreateArticle(context.Background(), journalist, CreateArticleInput{
		Title:       "Title",
		Body:        "Body",
		PublisherID: publisherID,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateArticle_EmptyFields(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	journalist := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}

	_, err := svc.CreateArticle(context.Background(), journalist, CreateArticleInput{
		Title:       "   ",
		Body:        "Body",
		PublisherID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdateArticle_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	author := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}
	article := draftArticle(author.ID, uuid.New())

	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	st.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateArticle(context.Background(), author, UpdateArticleInput{
		ArticleID: article.ID,
		Title:     "New title",
		Body:      "New body",
	})
	require.NoError(t, err)
	require.Equal(t, "New title", got.Title)
	require.Equal(t, "New body", got.Body)
}

func TestUpdateArticle_NotAuthor(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	article := draftArticle(uuid.New(), uuid.New())
	stranger := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}

	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)

	_, err := svc.UpdateArticle(context.Background(), stranger, UpdateArticleInput{
		ArticleID: article.ID,
		Title:     "t",
		Body:      "b",
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateArticle_NotDraft(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	author := models.Principal{ID: uuid.New(), Role: models.RoleJournalist}
	article := draftArticle(author.ID, uuid.New())
	article.State = models.StatePending

	st.EXPECT().ArticleByID(gomock.Any(), article.ID).Return(article, nil)
	// Контент на рассмотрении заморожен.
	st.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(storage.ErrWrongState)

	_, err := svc.UpdateArticle(context.Background(), author, UpdateArticleInput{
		ArticleID: article.ID,
		Title:     "t",
		Body:      "b",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListArticles_LimitNormalization(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	empty := &models.ArticlePage{}

	// limit=0 -> default.
	st.EXPECT().ListArticles(gomock.Any(), models.ArticleFilter{}, models.ListOptions{Limit: 20}).Return(empty, nil)
	_, err := svc.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{})
	require.NoError(t, err)

	// limit сверх максимума -> max.
	st.EXPECT().ListArticles(gomock.Any(), models.ArticleFilter{}, models.ListOptions{Limit: 100}).Return(empty, nil)
	_, err = svc.ListArticles(ctx, models.ArticleFilter{}, models.ListOptions{Limit: 1000})
	require.NoError(t, err)
}

func TestListArticles_InvalidCursor(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListArticles(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidCursor)

	_, err := svc.ListArticles(context.Background(), models.ArticleFilter{}, models.ListOptions{PageToken: "garbage"})
	require.ErrorIs(t, err, ErrInvalidCursor)
}

func TestListArticles_InvalidStateFilter(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ListArticles(context.Background(), models.ArticleFilter{State: "published"}, models.ListOptions{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
