package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/youssefchaouch/dental-practice-api/internal/middleware"
	"github.com/youssefchaouch/dental-practice-api/internal/store"
	"github.com/youssefchaouch/dental-practice-api/internal/ws"
)

// Handler carries the dependencies every endpoint needs: the
// persistence gateway, the notification hub and the process logger. All
// endpoints are methods on it.
type Handler struct {
	Store     *store.Store
	Hub       *ws.Hub
	Logger    *slog.Logger
	JWTSecret []byte
}

func NewHandler(s *store.Store, hub *ws.Hub, logger *slog.Logger, jwtSecret []byte) *Handler {
	return &Handler{
		Store:     s,
		Hub:       hub,
		Logger:    logger,
		JWTSecret: jwtSecret,
	}
}

// NewRouter wires every route. Unsupported methods on a known path
// return 405 with no body.
func NewRouter(h *Handler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterStaff)
		authRoutes.POST("/login", h.Login)
	}

	// Public routes consumed by the marketing site.
	apiRoutes := r.Group("/api")
	{
		apiRoutes.POST("/appointments", h.BookAppointment)
		apiRoutes.GET("/reviews", h.ListReviews)
		apiRoutes.POST("/reviews", h.SubmitReview)
		apiRoutes.GET("/services", h.ListServices)
	}

	// Staff dashboard routes.
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AuthRequired(h.JWTSecret))
	{
		adminRoutes.GET("/appointments", h.ListAppointments)
		adminRoutes.GET("/appointments/:id", h.GetAppointment)
		adminRoutes.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
	}

	r.GET("/ws", h.Notifications)

	return r
}

// Notifications hands the connection to the relay.
func (h *Handler) Notifications(c *gin.Context) {
	ws.Serve(h.Hub, h.Logger, c.Writer, c.Request)
}
