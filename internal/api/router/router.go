package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/config"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/handler"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/middleware"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/validate"
)

// RoleAdministrador is the only role allowed to manage profiles.
const RoleAdministrador = "administrador"

// profileRoutes is the CRUD surface shared by the three profile kinds.
type profileRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// Setup builds the gin engine. revoked and limiter may be nil.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	revoked middleware.RevocationChecker,
	limiter middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	validate.Init()

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── public, throttled ──
	throttle := middleware.RateLimit(limiter, cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window)
	r.POST("/login", throttle, h.Auth.Login)
	r.POST("/materias", throttle, h.Materia.Create)

	// ── session required ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, revoked))
	{
		authorized.POST("/logout", h.Auth.Logout)
		authorized.GET("/totales-usuarios", h.Totales.Get)

		materias := authorized.Group("/materias")
		{
			materias.GET("", h.Materia.Get)
			materias.GET("/all", h.Materia.List)
			materias.GET("/export", h.Export.ExportMaterias)
			materias.GET("/:id_materia/calendario", h.Export.Calendario)
			materias.PUT("", h.Materia.Update)
			materias.DELETE("", h.Materia.Delete)
			materias.DELETE("/:id_materia", h.Materia.Delete)
		}

		registerProfile(authorized.Group("/administradores"), h.Administrador)
		registerProfile(authorized.Group("/maestros"), h.Maestro)
		registerProfile(authorized.Group("/alumnos"), h.Alumno)
	}

	return r
}

func registerProfile(g *gin.RouterGroup, p profileRoutes) {
	adminOnly := middleware.RoleAuth(RoleAdministrador)

	g.GET("", p.Get)
	g.GET("/all", p.List)
	g.POST("", adminOnly, p.Create)
	g.PUT("", adminOnly, p.Update)
	g.DELETE("/:id", adminOnly, p.Delete)
}
