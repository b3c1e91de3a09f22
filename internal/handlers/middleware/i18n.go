package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/leadfunnel-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de erro de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage resolve o idioma na ordem: ?lang=, Accept-Language, padrão.
// O idioma escolhido é devolvido em Content-Language.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""
		if q := c.Query("lang"); q != "" && m.i18nService.IsLanguageSupported(q) {
			lang = q
		}
		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)
		c.Header("Vary", "Accept-Language")

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage retorna o idioma suportado de maior peso.
// Exemplo: "fr;q=0.9,es;q=0.8,pt-BR" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			w, err := strconv.ParseFloat(q, 64)
			if err != nil || w <= 0 {
				continue
			}
			weight = w
		}
		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// empate mantém a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, cand := range candidates {
		if m.i18nService.IsLanguageSupported(cand.tag) {
			return cand.tag
		}
		if base, _, found := strings.Cut(cand.tag, "-"); found && m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	return ""
}
