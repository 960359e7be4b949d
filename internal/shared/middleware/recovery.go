package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"title":   "Error",
					"message": "Internal server error",
					"status":  http.StatusInternalServerError,
					"code":    "SYS_001",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
