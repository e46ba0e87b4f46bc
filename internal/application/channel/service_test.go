package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/go-api-notifications/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockChannelStore struct{ mock.Mock }

func (m *mockChannelStore) Save(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error) {
	args := m.Called(ctx, c)
	if out, _ := args.Get(0).(*domain.NotificationChannel); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChannelStore) FindByID(ctx context.Context, id int64) (*domain.NotificationChannel, error) {
	args := m.Called(ctx, id)
	if out, _ := args.Get(0).(*domain.NotificationChannel); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChannelStore) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.NotificationChannel), args.Get(1).(int64), args.Error(2)
}

func (m *mockChannelStore) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- helpers ---

func newTestService(repo *mockChannelStore) Service {
	return NewService(repo, zerolog.Nop())
}

func baseChannel() *domain.NotificationChannel {
	return &domain.NotificationChannel{
		MessageTitle:   "messageTitle",
		Amount:         10,
		UserID:         "userId",
		Price:          10,
		NotificationID: 1,
	}
}

// --- tests ---

func TestCreate_StoresNotificationReferenceAsSubmitted(t *testing.T) {
	repo := &mockChannelStore{}
	in := baseChannel()
	in.NotificationID = 12345 // no such notification; this service does not check

	var saved *domain.NotificationChannel
	repo.On("Save", mock.Anything, in).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.NotificationChannel) }).
		Return(in, nil)

	svc := newTestService(repo)
	_, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(12345), saved.NotificationID)
	assert.Nil(t, saved.Notification) // never resolved
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockChannelStore{}
	repo.On("FindByID", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.GetByID(context.Background(), 8)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "notification channel with id 8")
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestGetByID_StoreErrorPassesThrough(t *testing.T) {
	repo := &mockChannelStore{}
	storeErr := errors.New("connection reset")
	repo.On("FindByID", mock.Anything, int64(8)).Return(nil, storeErr)

	svc := newTestService(repo)
	_, err := svc.GetByID(context.Background(), 8)

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAll_PassesPageSpecThrough(t *testing.T) {
	repo := &mockChannelStore{}
	page := domain.PageRequest{Page: 1, PerPage: 20}
	items := []domain.NotificationChannel{{ID: 1}}
	repo.On("FindAll", mock.Anything, page).Return(items, int64(1), nil)

	svc := newTestService(repo)
	out, total, err := svc.GetAll(context.Background(), page)

	require.NoError(t, err)
	assert.Equal(t, items, out)
	assert.Equal(t, int64(1), total)
}

func TestUpdateByID_OverwritesIDAndReplaces(t *testing.T) {
	repo := &mockChannelStore{}
	repo.On("FindByID", mock.Anything, int64(4)).Return(baseChannel(), nil)

	var saved *domain.NotificationChannel
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.NotificationChannel")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.NotificationChannel) }).
		Return(&domain.NotificationChannel{ID: 4}, nil)

	in := baseChannel()
	in.MessageTitle = "updated"
	in.NotificationID = 2

	svc := newTestService(repo)
	_, err := svc.UpdateByID(context.Background(), 4, in)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(4), saved.ID)
	assert.Equal(t, "updated", saved.MessageTitle)
	assert.Equal(t, int64(2), saved.NotificationID)
}

func TestUpdateByID_NotFound_NeverSaves(t *testing.T) {
	repo := &mockChannelStore{}
	repo.On("FindByID", mock.Anything, int64(77)).Return(nil, domain.ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.UpdateByID(context.Background(), 77, baseChannel())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteByID_AlwaysTrue(t *testing.T) {
	repo := &mockChannelStore{}
	repo.On("DeleteByID", mock.Anything, int64(9)).Return(nil)

	svc := newTestService(repo)
	ok, err := svc.DeleteByID(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}
