// Package list реализует HTTP-обработчик постраничной выборки пакетов курсов
// с необязательным фильтром по категории.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// Response — тело ответа листинга. Счётчики считаются отдельным проходом
// без соединения с категориями, поэтому totalCount может расходиться
// с фактическим числом элементов при «висячих» ссылках.
type Response struct {
	Success     bool                    `json:"success"`
	CurrentPage int                     `json:"currentPage"`
	TotalPages  int                     `json:"totalPages"`
	TotalCount  int                     `json:"totalCount"`
	Packages    []*models.CoursePackage `json:"packages"`
}

// Handler обрабатывает HTTP-запросы списка пакетов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики листинга пакетов.
type Service interface {
	List(ctx context.Context, entranceID string, page int) (*models.PackageList, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пакетов курсов
// @Description Постраничная выборка пакетов с фильтром по категории, размер страницы 50.
// @Tags CoursePackages
// @Produce  json
// @Param entranceID query string false "Фильтр по категории"
// @Param page query int false "Номер страницы, по умолчанию 1"
// @Success 200 {object} Response
// @Failure 400 {object} response.Message "Некорректный идентификатор категории"
// @Failure 500 {object} response.Message "Ошибка сервера"
// @Router /api/course-packages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.coursepackage.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entranceID := r.URL.Query().Get("entranceID")
	if entranceID != "" {
		if _, err := uuid.Parse(entranceID); err != nil {
			log.Error("malformed entrance id", slog.String("entranceID", entranceID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid entrance ID"))
			return
		}
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	res, err := h.service.List(r.Context(), entranceID, page)
	if err != nil {
		log.Error("failed to list course packages", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("list course packages", slog.Int("page", res.CurrentPage), slog.Int("count", len(res.Items)))
	render.JSON(w, r, Response{
		Success:     true,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		TotalCount:  res.TotalCount,
		Packages:    res.Items,
	})
}
