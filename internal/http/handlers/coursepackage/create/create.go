// Package create реализует HTTP-обработчик создания пакета курсов.
//
// Handler принимает multipart-форму с полями пакета и необязательным файлом
// картинки, который к этому моменту уже застейджен middleware-ом.
// Создание двухфазное: запись в базу, затем перенос картинки в каталог
// с именем по сгенерированному идентификатору.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crackora-admin/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
)

// Handler обрабатывает HTTP-запросы создания пакетов курсов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики создания пакета.
type Service interface {
	Create(ctx context.Context, form models.PackageForm, staged *media.StagedFile) (*models.CoursePackage, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Создать пакет курсов
// @Description Создает пакет по multipart-форме с необязательной картинкой. Возвращает созданный пакет.
// @Tags CoursePackages
// @Accept  multipart/form-data
// @Produce  json
// @Success 201 {object} map[string]any "Созданный пакет"
// @Failure 400 {object} response.ValidationErrors "Ошибки валидации формы"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/course-packages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coursepackage.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	form := formFromRequest(r)
	if errs := packageservice.Validate(form); len(errs) > 0 {
		log.Error("validation failed", slog.Any("errors", errs))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Validation(errs))
		return
	}

	pkg, err := h.service.Create(r.Context(), form, middlewarectx.StagedImage(r.Context()))
	if err != nil {
		if errors.Is(err, packageservice.ErrEntranceNotFound) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Validation([]string{"Entrance not found"}))
			return
		}
		log.Error("failed to create course package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("course package created", slog.String("id", pkg.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"message": "Course package created successfully",
		"data":    pkg,
	})
}

// formFromRequest собирает форму пакета из multipart-запроса.
// Поле examsCovered приходит повторяющимися значениями.
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
