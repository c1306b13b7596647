// Package list реализует HTTP-обработчик выборки экзаменов по категории.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// Handler обрабатывает HTTP-запросы списка экзаменов категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики экзаменов.
type Service interface {
	ListByEntrance(ctx context.Context, entranceID string) ([]*models.Exam, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список экзаменов категории
// @Tags Exams
// @Produce  json
// @Param entranceId path string true "Идентификатор категории"
// @Success 200 {array} models.Exam
// @Failure 400 {object} response.Message "Некорректный идентификатор"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/exams/{entranceId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exam.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entranceID := chi.URLParam(r, "entranceId")
	if _, err := uuid.Parse(entranceID); err != nil {
		log.Error("malformed entrance id", slog.String("entranceId", entranceID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid entranceId"))
		return
	}

	exams, err := h.service.ListByEntrance(r.Context(), entranceID)
	if err != nil {
		log.Error("failed to list exams", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("list exams", slog.String("entranceId", entranceID), slog.Int("count", len(exams)))
	render.JSON(w, r, exams)
}
