package http

import (
	"context"
	errs "errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/middleware"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
	"github.com/rafabene/leadfunnel-backend/internal/services"
)

const sessionStateKey = "oauth_state"

// IdentityProvider executa o fluxo OIDC authorization code
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (map[string]any, error)
}

// AuthHandler implementa login, callback e logout com sessão em cookie
type AuthHandler struct {
	provider    IdentityProvider
	userService *services.UserService
	metrics     *metrics.Metrics
	logger      ports.Logger
}

// NewAuthHandler cria um AuthHandler; provider nil desabilita o login (503)
func NewAuthHandler(provider IdentityProvider, userService *services.UserService, m *metrics.Metrics, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		provider:    provider,
		userService: userService,
		metrics:     m,
		logger:      logger,
	}
}

// Login godoc
// @Summary      Inicia o login no provedor OIDC
// @Tags         auth
// @Success      307
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.provider == nil {
		dto.Abort(c, dto.ServiceUnavailableErrorResponseI18n(c, "auth.login_unavailable"))
		return
	}

	state := uuid.NewString()
	session := sessions.Default(c)
	session.Set(sessionStateKey, state)
	if err := session.Save(); err != nil {
		respondInternal(c, h.logger, "auth.login_failed", err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// Callback godoc
// @Summary      Conclui o login OIDC
// @Tags         auth
// @Param        state  query  string  true  "State emitido no login"
// @Param        code   query  string  true  "Authorization code"
// @Success      307
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	if h.provider == nil {
		dto.Abort(c, dto.ServiceUnavailableErrorResponseI18n(c, "auth.login_unavailable"))
		return
	}

	session := sessions.Default(c)
	expected, _ := session.Get(sessionStateKey).(string)
	if expected == "" || c.Query("state") != expected {
		h.metrics.RecordAuthFailure("invalid_state")
		dto.Abort(c, dto.BadRequestErrorResponseI18n(c, "auth.invalid_state"))
		return
	}
	session.Delete(sessionStateKey)

	claims, err := h.provider.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.logger.Warn("oidc exchange failed",
			"request_id", c.GetString(middleware.RequestIDContextKey),
			"error", err,
		)
		h.metrics.RecordAuthFailure("exchange_failed")
		_ = session.Save()
		h.abortUnauthorized(c, "auth.exchange_failed")
		return
	}

	user, err := h.userService.SyncFromClaims(c.Request.Context(), claims)
	if err != nil {
		if errs.Is(err, errors.ErrUnauthorized) {
			h.metrics.RecordAuthFailure("missing_subject")
			h.abortUnauthorized(c, "auth.login_failed")
			return
		}
		respondInternal(c, h.logger, "auth.login_failed", err)
		return
	}
	h.metrics.RecordMutation(metrics.EntityUser, metrics.OpUpsert)

	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		respondInternal(c, h.logger, "auth.login_failed", err)
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID, "name", user.DisplayName())
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Logout godoc
// @Summary      Encerra a sessão
// @Tags         auth
// @Success      307
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.logger.Warn("failed to clear session", "error", err)
	}

	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func (h *AuthHandler) abortUnauthorized(c *gin.Context, messageKey string) {
	dto.Abort(c, dto.NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		messageKey,
		http.StatusUnauthorized,
	))
}
