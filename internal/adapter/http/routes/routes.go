package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "studio_api/docs"
	"studio_api/internal/adapter/http/middleware"
	"studio_api/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Run builds the dependencies, serves /v1 and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	router := NewRouter(cfg, deps, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.Int("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts the middleware chain and every route group.
func NewRouter(cfg *config.Config, deps *Dependencies, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.LocalFilesDir != "" {
		router.Static(deps.LocalFilesRoute, deps.LocalFilesDir)
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConfiguratorRoutes(v1, deps, cfg, log)
	addOnboardingRoutes(v1, deps)
	addEditorRoutes(v1, deps, cfg, log)
	addPaymentRoutes(v1, deps)
	addContentRoutes(v1, deps)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
}
