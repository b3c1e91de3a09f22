package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/metrics"
)

const (
	// RequestIDHeader é ecoado em toda resposta
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o ID da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
	// BaseURLContextKey guarda a URL base usada nos "type" RFC 7807
	BaseURLContextKey = "base_url"
)

// RequestID reaproveita um X-Request-ID válido do cliente ou gera um novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// BaseURL publica a URL base da API para os handlers
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BaseURLContextKey, baseURL)
		c.Next()
	}
}

// RequestLogger registra uma linha por requisição
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", c.GetString(RequestIDContextKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			logger.Error("request failed", args...)
		case status >= 400:
			logger.Warn("request rejected", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}

// Metrics alimenta os contadores HTTP usando a rota registrada como rótulo
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestStarted()
		defer func() {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			m.RequestFinished(c.Request.Method, route, c.Writer.Status(), time.Since(start))
		}()

		c.Next()
	}
}
