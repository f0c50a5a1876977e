package httpapi

import (
	"context"
	"net/http"
	"time"

	"gym_attendance_notifier/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server is the thin HTTP surface over the notification pipeline.
type Server struct {
	httpServer *http.Server
}

func NewServer(addr, environment string, notifier *app.NotifierService, members *app.MemberService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           newEngine(environment, notifier, members),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func newEngine(environment string, notifier *app.NotifierService, members *app.MemberService) *gin.Engine {
	if environment == "production" || environment == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if environment == "development" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	h := &handler{notifier: notifier, members: members}
	api := r.Group("/api/v1")
	h.registerRoutes(api)

	return r
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
