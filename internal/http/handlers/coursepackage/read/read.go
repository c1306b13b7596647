// Package read реализует HTTP-обработчик чтения пакета курсов по идентификатору.
package read

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
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
)

// Handler обрабатывает HTTP-запросы чтения пакета.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения пакета.
type Service interface {
	Read(ctx context.Context, id string) (*models.CoursePackage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пакет курсов по идентификатору
// @Description Возвращает пакет вместе с названием его категории.
// @Tags CoursePackages
// @Produce  json
// @Param id path string true "Идентификатор пакета"
// @Success 200 {object} models.CoursePackage
// @Failure 400 {object} response.Message "Некорректный идентификатор"
// @Failure 404 {object} response.Message "Пакет не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/course-packages/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coursepackage.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("malformed package id", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid course package ID"))
		return
	}

	pkg, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, packageservice.ErrPackageNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Course package not found"))
			return
		}
		log.Error("failed to read course package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	render.JSON(w, r, pkg)
}
