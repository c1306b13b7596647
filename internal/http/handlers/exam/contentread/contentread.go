// Package contentread реализует HTTP-обработчик чтения контента экзамена
// вместе с секциями оглавления.
package contentread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	examservice "github.com/magabrotheeeer/crackora-admin/internal/services/exam"
)

// Handler обрабатывает HTTP-запросы чтения контента экзамена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики контента экзаменов.
type Service interface {
	GetContent(ctx context.Context, examID string) (string, []models.Section, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Контент экзамена
// @Description Возвращает текст экзамена и секции оглавления. Отсутствующий контент — пустая строка, отсутствующие секции — пустой список.
// @Tags Exams
// @Produce  json
// @Param examId path string true "Идентификатор экзамена"
// @Success 200 {object} map[string]any
// @Failure 400 {object} response.Message "Некорректный идентификатор"
// @Failure 404 {object} response.Message "Экзамен не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/exams/{examId}/content [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exam.contentread"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	examID := chi.URLParam(r, "examId")
	if _, err := uuid.Parse(examID); err != nil {
		log.Error("malformed exam id", slog.String("examId", examID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid examId"))
		return
	}

	content, sections, err := h.service.GetContent(r.Context(), examID)
	if err != nil {
		if errors.Is(err, examservice.ErrExamNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Exam not found"))
			return
		}
		log.Error("failed to read exam content", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	render.JSON(w, r, map[string]any{
		"content":  content,
		"sections": sections,
	})
}
