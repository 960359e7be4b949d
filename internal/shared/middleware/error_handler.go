package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorMapper maps an error to (status, message, code)
type ErrorMapper func(err error) (int, string, string)

// ErrorHandler is the single place where errors pushed with c.Error become
// responses. Handlers abort after c.Error and write nothing themselves.
func ErrorHandler(mapErr ErrorMapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message, code := mapErr(err)

		evt := log.Warn()
		if status >= 500 {
			evt = log.Error()
		}
		evt.Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("code", code).
			Int("status", status).
			Msg("request failed")

		c.HTML(status, "error", gin.H{
			"title":   message,
			"message": message,
			"status":  status,
			"code":    code,
		})
	}
}
