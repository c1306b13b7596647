// Package services содержит бизнес-логику работы с пакетами курсов:
// двухфазное создание и обновление с переносом картинки, постраничную
// выборку и переключение статуса.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	"github.com/magabrotheeeer/crackora-admin/internal/storage/repository"
)

// PageSize фиксированный размер страницы листинга.
const PageSize = 50

// ErrPackageNotFound возвращается, когда пакет с заданным id отсутствует.
var ErrPackageNotFound = errors.New("course package not found")

// ErrEntranceNotFound возвращается на этапе записи, если указанная категория
// не существует. Дальше хранилище ссылку не контролирует.
var ErrEntranceNotFound = errors.New("entrance not found")

// PackageRepository определяет методы для работы с пакетами курсов в хранилище.
type PackageRepository interface {
	// CreatePackage вставляет пакет с пустым image и возвращает его ID.
	CreatePackage(ctx context.Context, pkg models.CoursePackage) (string, error)
	// GetPackage возвращает пакет по ID вместе с названием категории.
	GetPackage(ctx context.Context, id string) (*models.CoursePackage, error)
	// UpdatePackage обновляет поля пакета, возвращая количество изменённых строк.
	UpdatePackage(ctx context.Context, pkg models.CoursePackage, id string) (int, error)
	// UpdatePackageImage записывает относительный путь картинки.
	UpdatePackageImage(ctx context.Context, id, image string) error
	// UpdatePackageStatus переключает признак активности.
	UpdatePackageStatus(ctx context.Context, id string, isActive bool) (int, error)
	// ListPackages возвращает страницу пакетов с названием категории.
	ListPackages(ctx context.Context, entranceID string, limit, offset int) ([]*models.CoursePackage, error)
	// CountPackages считает пакеты по фильтру без соединения с категориями.
	CountPackages(ctx context.Context, entranceID string) (int, error)
	// EntranceExists сообщает, существует ли категория.
	EntranceExists(ctx context.Context, entranceID string) (bool, error)
}

// Promoter переносит застейдженный файл в каталог пакета.
type Promoter interface {
	Promote(entityID string, staged *media.StagedFile, oldPath string) (string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// PackageService реализует бизнес-логику пакетов курсов с кешированием чтений.
type PackageService struct {
	repo     PackageRepository
	promoter Promoter
	cache    Cache
	log      *slog.Logger
}

// NewPackageService создает новый экземпляр PackageService.
func NewPackageService(repo PackageRepository, promoter Promoter, cache Cache, log *slog.Logger) *PackageService {
	return &PackageService{
		repo:     repo,
		promoter: promoter,
		cache:    cache,
		log:      log,
	}
}

// Create создает пакет двухфазно: сначала запись с пустым image, затем —
// когда известен сгенерированный ID — перенос картинки и запись пути.
// Между фазами пакет виден читателям без картинки, это принятое окно.
// При ошибке переноса созданная запись остаётся, отката нет.
func (s *PackageService) Create(ctx context.Context, form models.PackageForm, staged *media.StagedFile) (*models.CoursePackage, error) {
	exists, err := s.repo.EntranceExists(ctx, form.EntranceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEntranceNotFound
	}

	id, err := s.repo.CreatePackage(ctx, toPackage(form))
	if err != nil {
		return nil, err
	}
	s.log.Info("created new course package", slog.String("id", id))

	if staged != nil {
		publicPath, err := s.promoter.Promote(id, staged, "")
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePackageImage(ctx, id, publicPath); err != nil {
			return nil, err
		}
		s.log.Info("package image promoted", slog.String("id", id), slog.String("image", publicPath))
	}

	pkg, err := s.repo.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	cacheKey := packageCacheKey(id)
	if err := s.cache.Set(cacheKey, pkg, time.Hour); err != nil {
		s.log.Warn("failed to cache course package", slog.String("key", cacheKey), sl.Err(err))
	}
	return pkg, nil
}

// Read возвращает пакет по ID, используя кеш или репозиторий.
func (s *PackageService) Read(ctx context.Context, id string) (*models.CoursePackage, error) {
	var result *models.CoursePackage
	cacheKey := packageCacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read course package from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache course package", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Update обновляет поля пакета и, если пришла новая картинка, переносит её,
// удаляя файл по ранее записанному пути. Передаётся именно сохранённый путь:
// при смене расширения только он указывает на реальный старый файл.
func (s *PackageService) Update(ctx context.Context, id string, form models.PackageForm, staged *media.StagedFile) (*models.CoursePackage, error) {
	existing, err := s.repo.GetPackage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	exists, err := s.repo.EntranceExists(ctx, form.EntranceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEntranceNotFound
	}

	if _, err = s.repo.UpdatePackage(ctx, toPackage(form), id); err != nil {
		return nil, err
	}

	if staged != nil {
		publicPath, err := s.promoter.Promote(id, staged, existing.Image)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePackageImage(ctx, id, publicPath); err != nil {
			return nil, err
		}
		s.log.Info("package image replaced", slog.String("id", id), slog.String("image", publicPath))
	}

	cacheKey := packageCacheKey(id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course package cache", slog.String("key", cacheKey), sl.Err(err))
	}

	return s.repo.GetPackage(ctx, id)
}

// UpdateStatus переключает признак активности пакета.
func (s *PackageService) UpdateStatus(ctx context.Context, id string, isActive bool) (*models.CoursePackage, error) {
	count, err := s.repo.UpdatePackageStatus(ctx, id, isActive)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPackageNotFound
	}

	cacheKey := packageCacheKey(id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course package cache", slog.String("key", cacheKey), sl.Err(err))
	}

	return s.repo.GetPackage(ctx, id)
}

// List возвращает страницу пакетов с фиксированным размером 50.
// Список и счётчик считаются двумя независимыми проходами: счётчик — без
// соединения с категориями, поэтому totalCount может превышать число реально
// возвращаемых элементов при «висячих» ссылках. Это задокументированное
// расхождение, его не «чинят» молча.
func (s *PackageService) List(ctx context.Context, entranceID string, page int) (*models.PackageList, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	totalCount, err := s.repo.CountPackages(ctx, entranceID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListPackages(ctx, entranceID, PageSize, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.CoursePackage{}
	}

	return &models.PackageList{
		Items:       items,
		CurrentPage: page,
		TotalPages:  (totalCount + PageSize - 1) / PageSize,
		TotalCount:  totalCount,
	}, nil
}

func packageCacheKey(id string) string {
	return fmt.Sprintf("coursepackage:%s", id)
}

// toPackage конвертирует провалидированную форму в доменную структуру.
// Числовые поля формы уже проверены Validate.
func toPackage(form models.PackageForm) models.CoursePackage {
	price, _ := strconv.ParseFloat(form.Price, 64)

	var discountedPrice *float64
	if form.DiscountedPrice != "" {
		v, _ := strconv.ParseFloat(form.DiscountedPrice, 64)
		discountedPrice = &v
	}

	var duration int
	if form.Duration != "" {
		v, _ := strconv.ParseFloat(form.Duration, 64)
		duration = int(v)
	}

	examsCovered := form.ExamsCovered
	if examsCovered == nil {
		examsCovered = []string{}
	}

	return models.CoursePackage{
		EntranceID:      form.EntranceID,
		CourseName:      form.CourseName,
		Title:           form.Title,
		Content:         form.Content,
		Price:           price,
		DiscountedPrice: discountedPrice,
		Teacher:         form.Teacher,
		Duration:        duration,
		Features:        form.Features,
		ExamsCovered:    examsCovered,
		Type:            form.Type,
	}
}
