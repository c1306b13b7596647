// Package status реализует HTTP-обработчик переключения активности пакета курсов.
package status

import (
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
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
)

// Request — входные данные переключения статуса. Указатель отличает
// отсутствующее или нечисловое поле от явного false.
type Request struct {
	IsActive *bool `json:"isActive"`
}

// Handler обрабатывает HTTP-запросы смены статуса пакета.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики смены статуса.
type Service interface {
	UpdateStatus(ctx context.Context, id string, isActive bool) (*models.CoursePackage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Переключить активность пакета
// @Tags CoursePackages
// @Accept  json
// @Produce  json
// @Param id path string true "Идентификатор пакета"
// @Param request body Request true "Новый статус"
// @Success 200 {object} map[string]any "Обновлённый пакет"
// @Failure 400 {object} response.Message "isActive не булево значение"
// @Failure 404 {object} response.Message "Пакет не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/course-packages/{id}/status [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coursepackage.status"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		log.Error("isActive must be a boolean")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("isActive must be a boolean"))
		return
	}

	pkg, err := h.service.UpdateStatus(r.Context(), id, *req.IsActive)
	if err != nil {
		if errors.Is(err, packageservice.ErrPackageNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Course package not found"))
			return
		}
		log.Error("failed to update course package status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("course package status updated", slog.String("id", id), slog.Bool("isActive", *req.IsActive))
	render.JSON(w, r, map[string]any{
		"message": "Course package status updated",
		"data":    pkg,
	})
}
