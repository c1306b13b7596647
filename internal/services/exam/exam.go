// Package services содержит бизнес-логику работы с экзаменами:
// выборка по категории и чтение/замена контента с секциями.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
	"github.com/magabrotheeeer/crackora-admin/internal/storage/repository"
)

// ErrExamNotFound возвращается, когда экзамен с заданным id отсутствует.
var ErrExamNotFound = errors.New("exam not found")

// ExamRepository определяет методы для работы с экзаменами в хранилище.
type ExamRepository interface {
	// ListExamsByEntrance возвращает все экзамены категории.
	ListExamsByEntrance(ctx context.Context, entranceID string) ([]*models.Exam, error)
	// GetExam возвращает экзамен по ID.
	GetExam(ctx context.Context, examID string) (*models.Exam, error)
	// UpdateExamContent заменяет контент и секции, возвращая обновлённый экзамен.
	UpdateExamContent(ctx context.Context, examID, content string, sections []models.Section) (*models.Exam, error)
}

// ExamService реализует операции админки над экзаменами.
type ExamService struct {
	repo ExamRepository
}

// NewExamService создает новый экземпляр ExamService.
func NewExamService(repo ExamRepository) *ExamService {
	return &ExamService{repo: repo}
}

// ListByEntrance возвращает экзамены указанной категории.
func (s *ExamService) ListByEntrance(ctx context.Context, entranceID string) ([]*models.Exam, error) {
	exams, err := s.repo.ListExamsByEntrance(ctx, entranceID)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []*models.Exam{}
	}
	return exams, nil
}

// GetContent возвращает контент экзамена и его секции.
// Отсутствующий контент — пустая строка, отсутствующие секции — пустой список.
func (s *ExamService) GetContent(ctx context.Context, examID string) (string, []models.Section, error) {
	exam, err := s.repo.GetExam(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return "", nil, ErrExamNotFound
		}
		return "", nil, err
	}
	sections := exam.Sections
	if sections == nil {
		sections = []models.Section{}
	}
	return exam.Content, sections, nil
}

// SetContent заменяет контент и весь список секций целиком.
// Частичное обновление секций не поддерживается: вызывающая сторона
// присылает полный желаемый набор.
func (s *ExamService) SetContent(ctx context.Context, examID, content string, sections []models.Section) (*models.Exam, error) {
	exam, err := s.repo.UpdateExamContent(ctx, examID, content, sections)
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return exam, nil
}
