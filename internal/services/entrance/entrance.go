// Package services содержит бизнес-логику чтения категорий экзаменов.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

const entrancesCacheKey = "entrances"

// EntranceRepository определяет методы для чтения категорий из хранилища.
type EntranceRepository interface {
	// ListEntrances возвращает все категории.
	ListEntrances(ctx context.Context) ([]*models.Entrance, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// EntranceService отдаёт список категорий, кешируя его на короткий срок:
// эндпоинтов изменения категорий в админке нет, список меняется редко.
type EntranceService struct {
	repo  EntranceRepository
	cache Cache
	log   *slog.Logger
}

// NewEntranceService создает новый экземпляр EntranceService.
func NewEntranceService(repo EntranceRepository, cache Cache, log *slog.Logger) *EntranceService {
	return &EntranceService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все категории, используя кеш или репозиторий.
// Ошибки кеша не фатальны: список всегда можно прочитать из базы.
func (s *EntranceService) List(ctx context.Context) ([]*models.Entrance, error) {
	var result []*models.Entrance
	found, err := s.cache.Get(entrancesCacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read entrances from cache", sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListEntrances(ctx)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Entrance{}
	}

	if err := s.cache.Set(entrancesCacheKey, result, 5*time.Minute); err != nil {
		s.log.Warn("failed to cache entrances", sl.Err(err))
	}
	return result, nil
}
