package middleware

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/monitoring"
)

const requestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса, если клиент его не прислал.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		monitoring.TrackRequest(c.Request.Method, route, strconv.Itoa(status), elapsed)

		requestID, _ := c.Get("request_id")
		attrs := []logger.Attr{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("elapsed", elapsed),
			logger.Any("request_id", requestID),
		}
		// handleError кладёт причину отказа в контекст запроса
		if errMsg, ok := c.Get("error"); ok {
			attrs = append(attrs, logger.Any("error", errMsg))
		}
		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request", attrs...)
	}
}
