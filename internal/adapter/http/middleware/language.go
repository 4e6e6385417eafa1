package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tasktrack/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves the response language from the Accept-Language
// header. Only the primary subtag matters: "fr-FR,fr;q=0.9" resolves to "fr",
// anything unrecognised falls back to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, resolveLang(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func resolveLang(header string) string {
	first := header
	if idx := strings.IndexAny(first, ",;"); idx >= 0 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)

	if base, _, found := strings.Cut(first, "-"); found {
		first = base
	}

	switch strings.ToLower(first) {
	case translator.LanguageFr:
		return translator.LanguageFr
	default:
		return translator.LanguageEn
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
