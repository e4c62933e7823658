package router

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/middleware"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler, auth *service.AuthService) {
	api.POST("/login", authLimiter, h.Login)
	api.POST("/register", authLimiter, h.Register)

	// 退出登录需要携带有效 Token（吊销的就是它）
	api.POST("/logout", middleware.JWTAuth(auth), h.Logout)
}
