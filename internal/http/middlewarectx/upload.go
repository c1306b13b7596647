// Package middlewarectx содержит HTTP middleware, складывающие данные запроса
// в контекст до вызова обработчика: застейдженный файл картинки и ограничение
// частоты запросов.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crackora-admin/internal/http/response"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/sl"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UploadedImage — ключ, под которым в контексте лежит *media.StagedFile.
const UploadedImage Key = "uploaded_image"

// maxUploadSize ограничивает размер multipart-формы.
const maxUploadSize = 32 << 20

// Upload возвращает middleware, который разбирает multipart-форму и, если в ней
// есть файл под полем image, стейджит его во временный каталог до запуска
// обработчика. Сущность на этот момент ещё не создана: ошибка записи файла
// завершает запрос кодом 500, не оставляя изменений в базе.
func Upload(stager *media.Stager, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Upload"
			logger := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if err := r.ParseMultipartForm(maxUploadSize); err != nil {
				if errors.Is(err, http.ErrNotMultipart) {
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("failed to parse multipart form", sl.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid multipart form"))
				return
			}

			file, header, err := r.FormFile("image")
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) {
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("failed to read uploaded file", sl.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid image upload"))
				return
			}
			defer func() {
				_ = file.Close()
			}()

			staged, err := stager.Stage(file, header.Filename)
			if err != nil {
				logger.Error("failed to stage uploaded file", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to store uploaded file"))
				return
			}
			logger.Info("image staged", slog.String("path", staged.Path))

			ctx := context.WithValue(r.Context(), UploadedImage, staged)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StagedImage достаёт из контекста застейдженный файл, если он был загружен.
func StagedImage(ctx context.Context) *media.StagedFile {
	staged, _ := ctx.Value(UploadedImage).(*media.StagedFile)
	return staged
}
