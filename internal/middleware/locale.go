package middleware

import (
	"usernotes-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale extracts the operator language from the request header and
// stores it in the context. Matching folds text per this language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader("lang")

		lang := locale.ParseLang(langHeader)

		ctx := c.Request.Context()
		ctx = locale.SetLocaleToContext(ctx, lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
