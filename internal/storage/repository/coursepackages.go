package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// ErrPackageNotFound возвращается, когда пакет курсов с заданным id отсутствует.
var ErrPackageNotFound = errors.New("course package not found")

// CreatePackage вставляет новый пакет курсов и возвращает сгенерированный ID.
// Поле image при создании всегда пустое: путь к картинке записывается вторым
// шагом, когда известен идентификатор пакета.
func (s *Storage) CreatePackage(ctx context.Context, pkg models.CoursePackage) (string, error) {
	const op = "storage.CreatePackage"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	examsCovered, err := json.Marshal(pkg.ExamsCovered)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO course_packages (entrance_id, course_name, title, content, price,
			      discounted_price, teacher, duration, features, exams_covered, type, image)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, '')
			  RETURNING id`
	var newID string
	err = s.DB.QueryRowContext(ctx, query,
		pkg.EntranceID, pkg.CourseName, pkg.Title, pkg.Content, pkg.Price,
		pkg.DiscountedPrice, pkg.Teacher, pkg.Duration, pkg.Features,
		examsCovered, pkg.Type).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPackage возвращает пакет по его ID вместе с названием категории.
// Используется LEFT JOIN: пакет с «висячей» ссылкой на категорию
// всё равно возвращается, просто с пустым entranceTitle.
func (s *Storage) GetPackage(ctx context.Context, id string) (*models.CoursePackage, error) {
	const op = "storage.GetPackage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT cp.id, cp.entrance_id, e.title, cp.course_name, cp.title, cp.content,
			      cp.price, cp.discounted_price, cp.teacher, cp.duration, cp.features,
			      cp.exams_covered, cp.type, cp.image, cp.is_active, cp.created_at, cp.updated_at
			  FROM course_packages cp
			  LEFT JOIN entrances e ON e.id = cp.entrance_id
			  WHERE cp.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	pkg, err := scanPackage(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPackageNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pkg, nil
}

// UpdatePackage обновляет поля пакета по его ID и возвращает количество изменённых строк.
// Поле image этим запросом не трогается, его ведёт UpdatePackageImage.
func (s *Storage) UpdatePackage(ctx context.Context, pkg models.CoursePackage, id string) (int, error) {
	const op = "storage.UpdatePackage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	examsCovered, err := json.Marshal(pkg.ExamsCovered)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE course_packages
			  SET entrance_id = $1, course_name = $2, title = $3, content = $4, price = $5,
			      discounted_price = $6, teacher = $7, duration = $8, features = $9,
			      exams_covered = $10, type = $11, updated_at = NOW()
			  WHERE id = $12`
	result, err := s.DB.ExecContext(ctx, query,
		pkg.EntranceID, pkg.CourseName, pkg.Title, pkg.Content, pkg.Price,
		pkg.DiscountedPrice, pkg.Teacher, pkg.Duration, pkg.Features,
		examsCovered, pkg.Type, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdatePackageImage записывает относительный путь к картинке пакета.
// Это второй шаг двухфазного создания и обновления.
func (s *Storage) UpdatePackageImage(ctx context.Context, id, image string) error {
	const op = "storage.UpdatePackageImage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE course_packages SET image = $1, updated_at = NOW() WHERE id = $2`
	if _, err := s.DB.ExecContext(ctx, query, image, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdatePackageStatus переключает признак активности пакета
// и возвращает количество изменённых строк.
func (s *Storage) UpdatePackageStatus(ctx context.Context, id string, isActive bool) (int, error) {
	const op = "storage.UpdatePackageStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE course_packages SET is_active = $1, updated_at = NOW() WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListPackages возвращает страницу пакетов, отсортированных по названию категории
// и названию пакета. Пакеты, чья категория удалена, из выборки выпадают:
// соединение с entrances внутреннее.
func (s *Storage) ListPackages(ctx context.Context, entranceID string, limit, offset int) ([]*models.CoursePackage, error) {
	const op = "storage.ListPackages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT cp.id, cp.entrance_id, e.title, cp.course_name, cp.title, cp.content,
			      cp.price, cp.discounted_price, cp.teacher, cp.duration, cp.features,
			      cp.exams_covered, cp.type, cp.image, cp.is_active, cp.created_at, cp.updated_at
			  FROM course_packages cp
			  JOIN entrances e ON e.id = cp.entrance_id`
	args := []any{limit, offset}
	if entranceID != "" {
		query += `
			  WHERE cp.entrance_id = $3`
		args = append(args, entranceID)
	}
	query += `
			  ORDER BY e.title ASC, cp.title ASC
			  LIMIT $1 OFFSET $2`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.CoursePackage
	for rows.Next() {
		pkg, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, pkg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountPackages считает пакеты по фильтру отдельным запросом без соединения
// с entrances, поэтому в счётчик попадают и пакеты с «висячей» ссылкой.
// Расхождение со списком задокументировано и сохраняется намеренно.
func (s *Storage) CountPackages(ctx context.Context, entranceID string) (int, error) {
	const op = "storage.CountPackages"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM course_packages`
	args := []any{}
	if entranceID != "" {
		query += ` WHERE entrance_id = $1`
		args = append(args, entranceID)
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// EntranceExists сообщает, существует ли категория с данным id.
// Используется как проверка ссылки на этапе записи; хранилище её не навязывает.
func (s *Storage) EntranceExists(ctx context.Context, entranceID string) (bool, error) {
	const op = "storage.EntranceExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM entrances WHERE id = $1)`
	if err := s.DB.QueryRowContext(ctx, query, entranceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// scanPackage читает строку пакета, разбирая exams_covered из jsonb.
func scanPackage(scan func(dest ...any) error) (*models.CoursePackage, error) {
	var pkg models.CoursePackage
	var entranceTitle sql.NullString
	var discountedPrice sql.NullFloat64
	var examsCoveredRaw []byte
	if err := scan(&pkg.ID, &pkg.EntranceID, &entranceTitle, &pkg.CourseName, &pkg.Title,
		&pkg.Content, &pkg.Price, &discountedPrice, &pkg.Teacher, &pkg.Duration,
		&pkg.Features, &examsCoveredRaw, &pkg.Type, &pkg.Image, &pkg.IsActive,
		&pkg.CreatedAt, &pkg.UpdatedAt); err != nil {
		return nil, err
	}
	pkg.EntranceTitle = entranceTitle.String
	if discountedPrice.Valid {
		pkg.DiscountedPrice = &discountedPrice.Float64
	}
	pkg.ExamsCovered = []string{}
	if len(examsCoveredRaw) > 0 {
		if err := json.Unmarshal(examsCoveredRaw, &pkg.ExamsCovered); err != nil {
			return nil, err
		}
	}
	return &pkg, nil
}
