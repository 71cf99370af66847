package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID 為每個請求設定 X-Request-ID，客戶端已提供時沿用原值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 取得 RequestID 中間件設定的請求 ID，未經過中間件時回傳空字串
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
