package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "project_materials/docs"
	"project_materials/internal/adapter/http/middleware"
	"project_materials/internal/adapter/http/ui"
	"project_materials/internal/infrastructure/config"
	"project_materials/internal/infrastructure/metrics"
	"project_materials/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the store, the project manager and the router, then serves
// until ctx is cancelled and shuts down within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	var m *metrics.Metrics
	var recorder usecase.OrderRecorder
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}

	repos, err := NewRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	manager := usecase.NewProjectManager(repos, log, recorder)

	router, err := NewRouter(cfg, log, manager, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("[http] server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// NewRouter wires middlewares, the JSON API, the HTML interface and the
// operational endpoints. m may be nil when metrics are disabled.
func NewRouter(cfg config.Config, log *logrus.Logger, manager usecase.IProjectManager, m *metrics.Metrics) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router, cfg, log, m)

	tmpl, err := ui.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse ui templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addAPIRoutes(router, manager)
	addUIRoutes(router.Group(ui.BasePath), ui.NewHandler(manager, log))
	return router, nil
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log *logrus.Logger, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins())))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("request_id", middleware.GetRequestID(c)).Errorf("[http] recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
