// Package crackoraadmin собирает приложение админ-бэкенда и его маршруты.
package crackoraadmin

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/crackora-admin/internal/config"
	"github.com/magabrotheeeer/crackora-admin/internal/http/handlers/auth/signin"
	"github.com/magabrotheeeer/crackora-admin/internal/http/handlers/auth/signup"
	cpcreate "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/coursepackage/create"
	cplist "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/coursepackage/list"
	cpread "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/coursepackage/read"
	cpstatus "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/coursepackage/status"
	cpupdate "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/coursepackage/update"
	entrancelist "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/entrance/list"
	"github.com/magabrotheeeer/crackora-admin/internal/http/handlers/exam/contentread"
	"github.com/magabrotheeeer/crackora-admin/internal/http/handlers/exam/contentsave"
	examlist "github.com/magabrotheeeer/crackora-admin/internal/http/handlers/exam/list"
	"github.com/magabrotheeeer/crackora-admin/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
	authservice "github.com/magabrotheeeer/crackora-admin/internal/services/auth"
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
	entranceservice "github.com/magabrotheeeer/crackora-admin/internal/services/entrance"
	examservice "github.com/magabrotheeeer/crackora-admin/internal/services/exam"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService,
	entranceService *entranceservice.EntranceService,
	examService *examservice.ExamService,
	packageService *packageservice.PackageService,
	stager *media.Stager) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/auth/signin", signin.New(logger, authService).ServeHTTP)

		r.Get("/entrances", entrancelist.New(logger, entranceService).ServeHTTP)
		r.Get("/exams/{entranceId}", examlist.New(logger, examService).ServeHTTP)
		r.Get("/exams/{examId}/content", contentread.New(logger, examService).ServeHTTP)

		r.Get("/course-packages", cplist.New(logger, packageService).ServeHTTP)
		r.Get("/course-packages/{id}", cpread.New(logger, packageService).ServeHTTP)

		// Изменяющие маршруты под общим ограничением частоты;
		// multipart-маршруты дополнительно стейджат картинку до обработчика.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/exams/{examId}/content", contentsave.New(logger, examService).ServeHTTP)
			r.With(middlewarectx.Upload(stager, logger)).
				Post("/course-packages", cpcreate.New(logger, packageService).ServeHTTP)
			r.With(middlewarectx.Upload(stager, logger)).
				Put("/course-packages/{id}", cpupdate.New(logger, packageService).ServeHTTP)
			r.Put("/course-packages/{id}/status", cpstatus.New(logger, packageService).ServeHTTP)
		})
	})

	// Раздача перенесённых картинок пакетов
	fileServer := http.StripPrefix("/coursepackages/",
		http.FileServer(http.Dir(filepath.Join(cfg.Media.Root, "coursepackages"))))
	r.Get("/coursepackages/*", fileServer.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
