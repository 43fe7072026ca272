package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"learn-with-jiji/internal/transport/http/response"
)

// RequestLogger emits one structured line per handled request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}).Info("request completed")
	}
}

// ErrorHandler is the terminal handler for errors pushed onto the gin
// context. Full detail goes to the log; production callers only ever see a
// generic message. The status comes from an AppError when one is present.
func ErrorHandler(log *logrus.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")

		if c.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		message := err.Error()
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			status = appErr.Status
			message = appErr.Message
		}
		if production {
			message = "internal server error"
		}
		response.Error(c, status, message)
	}
}

// Recovery converts panics anywhere in the pipeline into the same shape the
// error handler produces.
func Recovery(log *logrus.Logger, production bool) gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("request panicked")

		message := "internal server error"
		if !production {
			if err, ok := recovered.(error); ok {
				message = err.Error()
			}
		}
		response.Error(c, http.StatusInternalServerError, message)
		c.Abort()
	}
}
