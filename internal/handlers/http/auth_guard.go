package http

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
)

const (
	// UserIDContextKey guarda o ID do usuário autenticado no contexto do Gin
	UserIDContextKey = "user_id"
	// sessionUserKey é a chave do ID do usuário na sessão
	sessionUserKey = "user_id"
)

// TokenValidator resolve um bearer token para o ID do usuário
type TokenValidator interface {
	UserID(token string) (string, error)
}

// AuthGuard rejeita requisições sem sessão ou bearer token válidos
type AuthGuard struct {
	tokens  TokenValidator
	metrics *metrics.Metrics
}

// NewAuthGuard cria um AuthGuard; tokens pode ser nil para aceitar apenas sessões
func NewAuthGuard(tokens TokenValidator, m *metrics.Metrics) *AuthGuard {
	return &AuthGuard{tokens: tokens, metrics: m}
}

// RequireUser responde 401 antes dos handlers quando não há usuário
func (g *AuthGuard) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := sessions.Default(c).Get(sessionUserKey).(string); ok && userID != "" {
			c.Set(UserIDContextKey, userID)
			c.Next()
			return
		}

		token, found := bearerToken(c.GetHeader("Authorization"))
		if !found {
			g.reject(c, "missing_credentials")
			return
		}
		if g.tokens == nil {
			g.reject(c, "bearer_disabled")
			return
		}

		userID, err := g.tokens.UserID(token)
		if err != nil {
			g.reject(c, "invalid_token")
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func (g *AuthGuard) reject(c *gin.Context, reason string) {
	g.metrics.RecordAuthFailure(reason)
	dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c))
}

// bearerToken extrai o token de "Authorization: Bearer <token>"
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentUserID retorna o usuário resolvido pelo AuthGuard
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}
