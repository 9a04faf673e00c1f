package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"referrify/internal/microservices/http-api/handler"
	"referrify/internal/microservices/http-api/middleware"
	"referrify/internal/microservices/http-api/service"
)

// Services is everything the router needs to serve the API
type Services struct {
	Jobs          service.JobService
	Applications  service.ApplicationService
	Notifications service.NotificationService
	Sessions      service.SessionService
	Toasts        handler.ToastFeed
}

type RouterOptions struct {
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(opts.CORSOrigins))
	if opts.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Middleware())
	}

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive"})
	})

	api := r.Group("/api")
	handler.NewJobHandler(svc.Jobs, svc.Applications).RegisterRoutes(api.Group("/jobs"))
	handler.NewApplicationHandler(svc.Applications).RegisterRoutes(api.Group("/applications"))
	handler.NewNotificationHandler(svc.Notifications).RegisterRoutes(api.Group("/notifications"))
	handler.NewSessionHandler(svc.Sessions).RegisterRoutes(api.Group("/session"))
	if svc.Toasts != nil {
		handler.NewToastHandler(svc.Toasts).RegisterRoutes(api.Group("/toasts"))
	}

	return r
}
