package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/finestevents/backend/api"
	"github.com/finestevents/backend/config"
	"github.com/finestevents/backend/internal/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Events    *api.EventHandler
	Inquiries *api.InquiryHandler
	Bookings  *api.BookingHandler
	Admin     *api.AdminHandler
	Chat      *api.ChatHandler
}

// NewRouter assembles the gin engine: public routes under /api, admin routes
// behind the Basic-Auth gate, swagger UI when a docs dir is configured.
func NewRouter(cfg *config.Config, authenticator auth.AdminAuthenticator, h Handlers, log zerolog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(accessLog(log))
	engine.Use(cors.Default())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := engine.Group("/api")
	admin := engine.Group("/api", auth.Middleware(authenticator))

	h.Events.Register(public, admin)
	h.Inquiries.Register(public, admin)
	h.Bookings.Register(public, admin)
	h.Admin.Register(public)
	h.Chat.Register(public)

	if cfg.HTTP.SwaggerDir != "" {
		engine.Static("/swagger", cfg.HTTP.SwaggerDir)
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return engine
}

// Run serves the engine and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, engine *gin.Engine) error {
	srv := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func accessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
