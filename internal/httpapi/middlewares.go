package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestID"

// RequirePayload blocks post requests that have no payload attached
func RequirePayload(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			logger.Debug("RequirePayload Middleware: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{Error: "payload missing"})
			return
		}
		c.Next()
	}
}

func HasValidAPIKey(logger *slog.Logger, validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		keysInHeader := c.Request.Header.Values("Api-Key")
		for _, k := range keysInHeader {
			for _, vk := range validKeys {
				if k == vk {
					c.Next()
					return
				}
			}
		}

		logger.Warn("A valid API key missing", slog.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: "A valid API key missing"})
	}
}

// RequestID assigns each request an ID, reusing the client's if it sent one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one record per request after it completes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("id", c.GetString(requestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
