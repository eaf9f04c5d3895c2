package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/vendrahq/vendra/internal/types"
)

// RequestIDMiddleware tags every request with an ID and records the Origin
// header so downstream code can build redirect URLs.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

	if origin := c.GetHeader("Origin"); origin != "" {
		ctx = types.SetRequestOrigin(ctx, origin)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Request-ID", requestID)

	c.Next()
}
