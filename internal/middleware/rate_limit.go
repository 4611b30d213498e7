package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cchtnn/doctor-appointment-multiagent/pkg/response"
)

// RateLimit throttles callers per subject id. The id is read from the JSON
// body without consuming it; requests without a parsable id fall back to the
// client IP as the key.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.Enabled {
			c.Next()
			return
		}

		key := m.subjectKey(c)
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: throttled key=%s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) subjectKey(c *gin.Context) string {
	if c.Request.Body == nil {
		return c.ClientIP()
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return c.ClientIP()
	}
	// Hand the body back so the handler can bind it.
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var probe struct {
		IDNumber int `json:"id_number"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.IDNumber == 0 {
		return c.ClientIP()
	}
	return strconv.Itoa(probe.IDNumber)
}
