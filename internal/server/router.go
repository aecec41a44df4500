package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"kaamconnect/internal/config"
	"kaamconnect/internal/handlers"
	"kaamconnect/internal/middleware"
	"kaamconnect/internal/models"
	"kaamconnect/internal/registry"
	"kaamconnect/internal/session"
)

func NewRouter(cfg *config.Config, reg *registry.Service, mgr *session.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("kaamconnect_session", store))
	r.Use(middleware.InjectSession(mgr))

	h := handlers.New(reg, mgr)

	// AUTH
	r.POST("/customer/signup", h.CustomerSignup)
	r.POST("/customer/signin", h.CustomerSignin)
	r.POST("/contractor/signup", h.ContractorSignup)
	r.POST("/contractor/signin", h.ContractorSignin)
	r.POST("/labourer/signup", h.LabourerSignup)
	r.POST("/labourer/signin", h.LabourerSignin)
	r.POST("/admin/signin", h.AdminSignin)
	r.GET("/logout", h.Logout)

	// DASHBOARDS
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/dashboard/customer",
		middleware.RequireRole(models.RoleCustomer),
		h.CustomerDashboard,
	)
	auth.GET("/dashboard/contractor",
		middleware.RequireRole(models.RoleContractor),
		h.ContractorDashboard,
	)
	auth.GET("/dashboard/labourer",
		middleware.RequireRole(models.RoleLabourer),
		h.LabourerDashboard,
	)
	auth.GET("/dashboard/admin",
		middleware.RequireRole(models.RoleAdmin),
		h.AdminDashboard,
	)

	// API
	r.GET("/api/stats", h.PlatformStats)
	auth.GET("/api/users",
		middleware.RequireRole(models.RoleAdmin),
		h.AllUsers,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
