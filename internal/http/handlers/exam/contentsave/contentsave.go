// Package contentsave реализует HTTP-обработчик сохранения контента экзамена.
//
// Секции принимаются только массивом и заменяются целиком: частичное слияние
// с прежним набором не поддерживается, вызывающая сторона присылает весь список.
package contentsave

import (
	"bytes"
	"context"
	"encoding/json"
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

// Request — входные данные сохранения контента. Sections разбирается
// отложенно, чтобы отличить «не массив» от прочих ошибок формата.
type Request struct {
	Content  string          `json:"content"`
	Sections json.RawMessage `json:"sections"`
}

// Handler обрабатывает HTTP-запросы сохранения контента экзамена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики контента экзаменов.
type Service interface {
	SetContent(ctx context.Context, examID, content string, sections []models.Section) (*models.Exam, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сохранить контент экзамена
// @Description Заменяет текст экзамена и весь список секций. Возвращает обновлённый экзамен.
// @Tags Exams
// @Accept  json
// @Produce  json
// @Param examId path string true "Идентификатор экзамена"
// @Param request body Request true "Контент и секции"
// @Success 200 {object} models.Exam
// @Failure 400 {object} response.Message "Некорректный идентификатор или секции не массив"
// @Failure 404 {object} response.Message "Экзамен не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/exams/{examId}/content [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exam.contentsave"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	sections, ok := decodeSections(req.Sections)
	if !ok {
		log.Error("sections is not an array")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Sections must be an array"))
		return
	}

	exam, err := h.service.SetContent(r.Context(), examID, req.Content, sections)
	if err != nil {
		if errors.Is(err, examservice.ErrExamNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Exam not found"))
			return
		}
		log.Error("failed to save exam content", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("exam content saved", slog.String("examId", examID), slog.Int("sections", len(sections)))
	render.JSON(w, r, exam)
}

// decodeSections принимает только JSON-массив: отсутствующее поле, null
// и значения других типов отклоняются.
func decodeSections(raw json.RawMessage) ([]models.Section, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var sections []models.Section
	if err := json.Unmarshal(trimmed, &sections); err != nil {
		return nil, false
	}
	if sections == nil {
		sections = []models.Section{}
	}
	return sections, true
}
