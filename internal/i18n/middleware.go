package i18n

import "github.com/gin-gonic/gin"

// Middleware resolves a localizer from the Accept-Language header and stores
// it in the request context for later Message calls.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		localizer := GetLocalizer(c.GetHeader("Accept-Language"))
		c.Set(localizerKey, localizer)
		c.Next()
	}
}
