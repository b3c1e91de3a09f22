package http

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/leadfunnel-backend/docs"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/middleware"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/i18n"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
)

// SessionCookieName é o nome do cookie de sessão
const SessionCookieName = "leadfunnel_session"

// Router agrupa o que NewRouter precisa para montar as rotas
type Router struct {
	Env          string
	BaseURL      string
	CORSOrigins  []string
	Logger       ports.Logger
	I18n         *i18n.Service
	Metrics      *metrics.Metrics
	SessionStore sessions.Store

	Guard       *AuthGuard
	Auth        *AuthHandler
	Users       *UserHandler
	Leads       *LeadHandler
	LeadMagnets *LeadMagnetHandler
	Dashboard   *DashboardHandler
}

// recoverWithProblem responde panics com o mesmo corpo RFC 7807 dos demais 500
func recoverWithProblem(logger ports.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"request_id", c.GetString(middleware.RequestIDContextKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		dto.Abort(c, dto.InternalErrorResponseI18n(c, "error.internal.detail"))
	}
}

// NewRouter monta o engine Gin com middlewares e rotas
func NewRouter(r Router) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.CustomRecovery(recoverWithProblem(r.Logger)),
		middleware.RequestID(),
		middleware.RequestLogger(r.Logger),
		middleware.Metrics(r.Metrics),
		middleware.BaseURL(r.BaseURL),
		middleware.NewI18nMiddleware(r.I18n).DetectLanguage(),
		middleware.CORS(r.CORSOrigins),
		sessions.Sessions(SessionCookieName, r.SessionStore),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    r.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(r.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Fluxo de login (público)
		api.GET("/login", r.Auth.Login)
		api.GET("/callback", r.Auth.Callback)
		api.GET("/logout", r.Auth.Logout)

		protected := api.Group("", r.Guard.RequireUser())

		protected.GET("/auth/user", r.Users.GetCurrentUser)

		leads := protected.Group("/leads")
		{
			leads.GET("", r.Leads.ListLeads)
			leads.GET("/:id", r.Leads.GetLead)
			leads.POST("", r.Leads.CreateLead)
			leads.PUT("/:id", r.Leads.UpdateLead)
			leads.DELETE("/:id", r.Leads.DeleteLead)
		}

		magnets := protected.Group("/lead-magnets")
		{
			magnets.GET("", r.LeadMagnets.ListLeadMagnets)
			magnets.GET("/:id", r.LeadMagnets.GetLeadMagnet)
			magnets.POST("", r.LeadMagnets.CreateLeadMagnet)
			magnets.PUT("/:id", r.LeadMagnets.UpdateLeadMagnet)
			magnets.DELETE("/:id", r.LeadMagnets.DeleteLeadMagnet)
		}

		protected.GET("/dashboard/stats", r.Dashboard.GetStats)
	}

	return router
}
