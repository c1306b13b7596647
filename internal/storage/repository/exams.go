package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// ErrExamNotFound возвращается, когда экзамен с заданным id отсутствует.
var ErrExamNotFound = errors.New("exam not found")

// ListExamsByEntrance возвращает все экзамены указанной категории.
func (s *Storage) ListExamsByEntrance(ctx context.Context, entranceID string) ([]*models.Exam, error) {
	const op = "storage.ListExamsByEntrance"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, entrance_id, title, slug, description, is_active,
			      content, sections, created_at, updated_at
			  FROM exams
			  WHERE entrance_id = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, entranceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, exam)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetExam возвращает экзамен по его id или ErrExamNotFound.
func (s *Storage) GetExam(ctx context.Context, examID string) (*models.Exam, error) {
	const op = "storage.GetExam"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, entrance_id, title, slug, description, is_active,
			      content, sections, created_at, updated_at
			  FROM exams
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, examID)
	exam, err := scanExam(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrExamNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return exam, nil
}

// UpdateExamContent заменяет контент и весь список секций одним запросом
// и возвращает обновлённый экзамен. Частичное слияние секций не поддерживается.
func (s *Storage) UpdateExamContent(ctx context.Context, examID, content string, sections []models.Section) (*models.Exam, error) {
	const op = "storage.UpdateExamContent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE exams
			  SET content = $1, sections = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING id, entrance_id, title, slug, description, is_active,
			      content, sections, created_at, updated_at`
	row := s.DB.QueryRowContext(ctx, query, content, sectionsJSON, examID)
	exam, err := scanExam(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrExamNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return exam, nil
}

// scanExam читает строку экзамена, разбирая секции из jsonb.
func scanExam(scan func(dest ...any) error) (*models.Exam, error) {
	var exam models.Exam
	var slug, description sql.NullString
	var sectionsRaw []byte
	if err := scan(&exam.ID, &exam.EntranceID, &exam.Title, &slug, &description,
		&exam.IsActive, &exam.Content, &sectionsRaw, &exam.CreatedAt, &exam.UpdatedAt); err != nil {
		return nil, err
	}
	exam.Slug = slug.String
	exam.Description = description.String
	exam.Sections = []models.Section{}
	if len(sectionsRaw) > 0 {
		if err := json.Unmarshal(sectionsRaw, &exam.Sections); err != nil {
			return nil, err
		}
	}
	return &exam, nil
}
