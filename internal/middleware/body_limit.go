package middleware

import (
	"net/http"

	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制请求体大小
func BodyLimitMiddleware(settings *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := settings.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			// 如果未设置或为0，默认 1MB（纯 JSON 接口足够了）
			maxSizeMB = 1
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}
