// Package list реализует HTTP-обработчик выборки всех категорий экзаменов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// Handler обрабатывает HTTP-запросы списка категорий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения категорий.
type Service interface {
	List(ctx context.Context) ([]*models.Entrance, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список категорий экзаменов
// @Tags Entrances
// @Produce  json
// @Success 200 {array} models.Entrance
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/entrances [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entrance.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entrances, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list entrances", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("list entrances", slog.Int("count", len(entrances)))
	render.JSON(w, r, entrances)
}
