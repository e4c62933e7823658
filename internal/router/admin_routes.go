package router

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/middleware"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *handler.Handler, auth *service.AuthService, users repository.UserStore) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(auth))
	adminGroup.Use(middleware.UserStatusCheck(users))
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", h.AdminGetStats)
	adminGroup.GET("/settings", h.AdminListSettings)
	adminGroup.PUT("/settings", h.AdminUpdateSetting)
}
