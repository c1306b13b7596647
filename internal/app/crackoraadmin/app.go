package crackoraadmin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/crackora-admin/internal/cache"
	"github.com/magabrotheeeer/crackora-admin/internal/config"
	"github.com/magabrotheeeer/crackora-admin/internal/lib/jwt"
	"github.com/magabrotheeeer/crackora-admin/internal/media"
	"github.com/magabrotheeeer/crackora-admin/internal/migrations"
	authservice "github.com/magabrotheeeer/crackora-admin/internal/services/auth"
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
	entranceservice "github.com/magabrotheeeer/crackora-admin/internal/services/entrance"
	examservice "github.com/magabrotheeeer/crackora-admin/internal/services/exam"
	"github.com/magabrotheeeer/crackora-admin/internal/storage/repository"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: БД с миграциями, redis, сервисы, маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	stager := media.NewStager(cfg.Media.TempDir)
	promoter := media.NewPromoter(cfg.Media.Root)

	authService := authservice.NewAuthService(db, jwtMaker)
	entranceService := entranceservice.NewEntranceService(db, cacheRedis, logger)
	examService := examservice.NewExamService(db)
	packageService := packageservice.NewPackageService(db, promoter, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, entranceService, examService, packageService, stager)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
