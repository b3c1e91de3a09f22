package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/handlers/middleware"
)

const fallbackLanguage = "en"

// translator é o subconjunto do serviço i18n usado pelos handlers
type translator interface {
	T(lang, key string, params ...map[string]interface{}) string
}

// T traduz key no idioma da requisição; sem o middleware de i18n devolve a chave
//
//	dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Lead"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, _ := c.Get(middleware.I18nServiceContextKey)
	service, ok := value.(translator)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma negociado para a requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
