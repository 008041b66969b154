package middleware

import (
	"github.com/gin-gonic/gin"

	"autoexport-srv/pkg/locale"
)

// Locale returns a middleware that extracts and sets the locale from the request.
// It reads the "lang" query parameter first, then the "lang" header, validates
// the value, and sets the locale in the request context.
// If no valid locale is provided, it defaults to the system default locale.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langValue := c.Query("lang")
		if langValue == "" {
			langValue = c.GetHeader("lang")
		}

		lang := locale.ParseLang(langValue)

		ctx := c.Request.Context()
		ctx = locale.SetLocaleToContext(ctx, lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
