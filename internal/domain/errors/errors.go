package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrLeadNotFound       = errors.New("error.lead_not_found")
	ErrLeadMagnetNotFound = errors.New("error.lead_magnet_not_found")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrInvalidID          = errors.New("error.invalid_id")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// FieldError descreve a falha de validação de um único campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// ValidationError agrega uma entrada por campo inválido
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add registra uma falha de campo
func (e *ValidationError) Add(field, tag, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Tag: tag})
}

// HasErrors indica se alguma falha foi registrada
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil retorna o próprio erro quando há falhas, senão nil
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
