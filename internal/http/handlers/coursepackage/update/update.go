// Package update реализует HTTP-обработчик обновления пакета курсов.
//
// Если в форме пришла новая картинка, старый файл удаляется по ранее
// записанному пути, а новый переносится на его место.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/crackora-admin/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
)

// Handler обрабатывает HTTP-запросы обновления пакетов курсов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления пакета.
type Service interface {
	Update(ctx context.Context, id string, form models.PackageForm, staged *media.StagedFile) (*models.CoursePackage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить пакет курсов
// @Description Обновляет пакет по multipart-форме, при необходимости заменяя картинку.
// @Tags CoursePackages
// @Accept  multipart/form-data
// @Produce  json
// @Param id path string true "Идентификатор пакета"
// @Success 200 {object} map[string]any "Обновлённый пакет"
// @Failure 400 {object} response.ValidationErrors "Ошибки валидации формы"
// @Failure 404 {object} response.Message "Пакет не найден"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/course-packages/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coursepackage.update"

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

	form := formFromRequest(r)
	if errs := packageservice.Validate(form); len(errs) > 0 {
		log.Error("validation failed", slog.Any("errors", errs))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Validation(errs))
		return
	}

	pkg, err := h.service.Update(r.Context(), id, form, middlewarectx.StagedImage(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, packageservice.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Course package not found"))
		case errors.Is(err, packageservice.ErrEntranceNotFound):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Validation([]string{"Entrance not found"}))
		default:
			log.Error("failed to update course package", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
		}
		return
	}

	log.Info("course package updated", slog.String("id", pkg.ID))
	render.JSON(w, r, map[string]any{
		"message": "Course package updated successfully",
		"data":    pkg,
	})
}

// formFromRequest собирает форму пакета из multipart-запроса.
func formFromRequest(r *http.Request) models.PackageForm {
	var examsCovered []string
	if r.MultipartForm != nil {
		examsCovered = r.MultipartForm.Value["examsCovered"]
	}
	return models.PackageForm{
		EntranceID:      r.FormValue("entranceID"),
		CourseName:      r.FormValue("courseName"),
		Title:           r.FormValue("title"),
		Content:         r.FormValue("content"),
		Price:           r.FormValue("price"),
		DiscountedPrice: r.FormValue("discountedPrice"),
		Teacher:         r.FormValue("teacher"),
		Duration:        r.FormValue("duration"),
		Features:        r.FormValue("features"),
		ExamsCovered:    examsCovered,
		Type:            r.FormValue("type"),
	}
}
