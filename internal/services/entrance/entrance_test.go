package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListEntrances(ctx context.Context) ([]*models.Entrance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entrance), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newTestService() (*EntranceService, *RepoMock, *CacheMock) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEntranceService(repo, cache, logger), repo, cache
}

func TestEntranceService_List(t *testing.T) {
	t.Run("попадание в кеш", func(t *testing.T) {
		svc, repo, cache := newTestService()
		cached := []*models.Entrance{{ID: uuid.New().String(), Title: "ЕГЭ"}}

		cache.On("Get", "entrances", mock.Anything).Run(func(args mock.Arguments) {
			ptr := args.Get(1).(*[]*models.Entrance)
			*ptr = cached
		}).Return(true, nil)

		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cached, got)
		repo.AssertNotCalled(t, "ListEntrances")
	})

	t.Run("промах кеша: чтение из базы и запись в кеш", func(t *testing.T) {
		svc, repo, cache := newTestService()
		entrances := []*models.Entrance{
			{ID: uuid.New().String(), Title: "ОГЭ"},
			{ID: uuid.New().String(), Title: "ЕГЭ"},
		}

		cache.On("Get", "entrances", mock.Anything).Return(false, nil)
		repo.On("ListEntrances", mock.Anything).Return(entrances, nil)
		cache.On("Set", "entrances", entrances, 5*time.Minute).Return(nil)

		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entrances, got)
		cache.AssertExpectations(t)
	})

	t.Run("ошибка кеша не мешает чтению из базы", func(t *testing.T) {
		svc, repo, cache := newTestService()
		entrances := []*models.Entrance{{ID: uuid.New().String(), Title: "ЕГЭ"}}

		cache.On("Get", "entrances", mock.Anything).Return(false, errors.New("redis down"))
		repo.On("ListEntrances", mock.Anything).Return(entrances, nil)
		cache.On("Set", "entrances", entrances, 5*time.Minute).Return(errors.New("redis down"))

		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entrances, got)
	})

	t.Run("пустая база отдаёт пустой срез, а не nil", func(t *testing.T) {
		svc, repo, cache := newTestService()

		cache.On("Get", "entrances", mock.Anything).Return(false, nil)
		repo.On("ListEntrances", mock.Anything).Return(nil, nil)
		cache.On("Set", "entrances", mock.Anything, 5*time.Minute).Return(nil)

		got, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
