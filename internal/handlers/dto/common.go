package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
)

// ProblemContentType é o media type de respostas de erro RFC 7807
const ProblemContentType = "application/problem+json"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Message repete a mensagem curta que a UI exibe ("Lead not found").
type ErrorResponse struct {
	*problems.Problem
	Message string                    `json:"message"`
	Errors  []domainerrors.FieldError `json:"errors,omitempty"`
}

// MessageResponse é o corpo de operações sem entidade de retorno (delete)
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, messageKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	message := T(c, messageKey, params...)

	problem := problems.NewDetailedProblem(status, message)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{
		Problem: problem,
		Message: message,
	}
}

// Abort escreve a resposta de erro e interrompe a cadeia de handlers
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", ProblemContentType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, messageKey string, fieldErrors []domainerrors.FieldError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		messageKey,
		400,
	)
	response.Errors = fieldErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, messageKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		messageKey,
		404,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"auth.unauthorized",
		401,
	)
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 sem detalhes de campo
func BadRequestErrorResponseI18n(c *gin.Context, messageKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		messageKey,
		400,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500.
// A mensagem é genérica por operação; a causa nunca é exposta ao cliente.
func InternalErrorResponseI18n(c *gin.Context, messageKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		messageKey,
		500,
	)
}

// ServiceUnavailableErrorResponseI18n cria uma resposta de erro 503
func ServiceUnavailableErrorResponseI18n(c *gin.Context, messageKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		messageKey,
		503,
	)
}
