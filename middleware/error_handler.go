package middleware

import (
	"net/http"

	"github.com/donelist/todo-backend/errors"
	"github.com/donelist/todo-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached to the gin context. It is the single
// place application errors become transport status codes; handlers never
// construct a status code themselves. Failures carry no diagnostic payload,
// only the status line - details go to the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			status := appError.GetHTTPStatus()
			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", status,
				"errorType", string(appError.Type),
				"error", appError.Error(),
				"requestID", c.GetString(RequestIDKey),
			)
			c.Status(status)
			return
		}

		// Gin binding errors surface as bad requests.
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Warnw("Request binding failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err,
				"requestID", c.GetString(RequestIDKey),
			)
			c.Status(http.StatusBadRequest)
			return
		}

		log.Errorw("Unexpected server error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
			"requestID", c.GetString(RequestIDKey),
		)
		c.Status(http.StatusInternalServerError)
	}
}
