package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	deviceIDHeader     = "X-Device-ID"
	deviceIDContextKey = "device_id"
	maxDeviceIDLength  = 128
)

// DeviceIDMiddleware - middleware, извлекающее идентификатор устройства из заголовка X-Device-ID
func DeviceIDMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(deviceIDHeader))

		if deviceID == "" {
			log.WithField("path", c.FullPath()).Warn("Device ID missing from request")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header required"})
			return
		}

		if len(deviceID) > maxDeviceIDLength {
			log.WithField("path", c.FullPath()).Warn("Device ID too long")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid X-Device-ID header"})
			return
		}

		c.Set(deviceIDContextKey, deviceID)
		c.Next()
	}
}

func deviceID(c *gin.Context) string {
	return c.GetString(deviceIDContextKey)
}
