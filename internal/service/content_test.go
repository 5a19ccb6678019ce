package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/storage"
)

func editorUser(id uuid.UUID) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:        id,
		Username:  "ed",
		Email:     "ed@example.com",
		Role:      models.RoleEditor,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreatePublisher_OK_CreatorGetsAuthority(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	editor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}

	// Создатель закрепляется за изданием в том же вызове хранилища.
	st.EXPECT().SavePublisher(gomock.Any(), gomock.Any(), editor.ID).
		DoAndReturn(func(_ context.Context, p *models.Publisher, _ uuid.UUID) error {
			require.Equal(t, "Daily Planet", p.Name)
			require.NotEqual(t, uuid.Nil, p.ID)
			return nil
		})

	p, err := svc.CreatePublisher(context.Background(), editor, "  Daily Planet ", "desc", "https://dp.example")
	require.NoError(t, err)
	require.Equal(t, "Daily Planet", p.Name)
}

func TestCreatePublisher_NotEditor(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	reader := models.Principal{ID: uuid.New(), Role: models.RoleReader}

	_, err := svc.CreatePublisher(context.Background(), reader, "name", "", "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreatePublisher_EmptyName(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	editor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}

	_, err := svc.CreatePublisher(context.Background(), editor, "   ", "", "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGrantAuthority_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()
	target := editorUser(uuid.New())

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)
	st.EXPECT().GrantAuthority(gomock.Any(), target.ID, pubID).Return(nil)

	require.NoError(t, svc.GrantAuthority(context.Background(), actor, pubID, target.ID))
}

func TestGrantAuthority_ActorWithoutAuthority(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(false, nil)

	err := svc.GrantAuthority(context.Background(), actor, pubID, uuid.New())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGrantAuthority_TargetNotEditor(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()
	target := editorUser(uuid.New())
	target.Role = models.RoleReader

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)

	err := svc.GrantAuthority(context.Background(), actor, pubID, target.ID)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGrantAuthority_TargetNotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()
	targetID := uuid.New()

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), targetID).Return(nil, storage.ErrNotFound)

	err := svc.GrantAuthority(context.Background(), actor, pubID, targetID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddStaffJournalist_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()
	target := editorUser(uuid.New())
	target.Role = models.RoleJournalist

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)
	st.EXPECT().AddStaffJournalist(gomock.Any(), pubID, target.ID).Return(nil)

	require.NoError(t, svc.AddStaffJournalist(context.Background(), actor, pubID, target.ID))
}

func TestAddStaffJournalist_TargetNotJournalist(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	pubID := uuid.New()
	target := editorUser(uuid.New()) // role = editor, не journalist

	st.EXPECT().HasAuthority(gomock.Any(), actor.ID, pubID).Return(true, nil)
	st.EXPECT().UserByID(gomock.Any(), target.ID).Return(target, nil)

	err := svc.AddStaffJournalist(context.Background(), actor, pubID, target.ID)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPublisherStaff_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pubID := uuid.New()
	editors := []uuid.UUID{uuid.New(), uuid.New()}
	journalists := []uuid.UUID{uuid.New()}

	st.EXPECT().PublisherByID(gomock.Any(), pubID).Return(&models.Publisher{ID: pubID, Name: "p"}, nil)
	st.EXPECT().PublisherEditors(gomock.Any(), pubID).Return(editors, nil)
	st.EXPECT().StaffJournalists(gomock.Any(), pubID).Return(journalists, nil)

	staff, err := svc.PublisherStaff(context.Background(), pubID)
	require.NoError(t, err)
	require.Equal(t, editors, staff.Editors)
	require.Equal(t, journalists, staff.Journalists)
}

func TestPublisherStaff_UnknownPublisher(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pubID := uuid.New()
	st.EXPECT().PublisherByID(gomock.Any(), pubID).Return(nil, storage.ErrNotFound)

	_, err := svc.PublisherStaff(context.Background(), pubID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestManagedPublishers_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	actor := models.Principal{ID: uuid.New(), Role: models.RoleEditor}
	ids := []uuid.UUID{uuid.New()}

	st.EXPECT().EditorPublishers(gomock.Any(), actor.ID).Return(ids, nil)

	got, err := svc.ManagedPublishers(context.Background(), actor)
	require.NoError(t, err)
	require.Equal(t, ids, got)
}

func TestManagedPublishers_NotEditor(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ManagedPublishers(context.Background(), models.Principal{ID: uuid.New(), Role: models.RoleJournalist})
	require.ErrorIs(t, err, ErrUnauthorized)
}
