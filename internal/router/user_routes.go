package router

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/middleware"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler, auth *service.AuthService, users repository.UserStore) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth(auth))
	userGroup.Use(middleware.UserStatusCheck(users))

	userGroup.GET("/profile", h.GetSelfInfo)
	userGroup.PATCH("/password", h.UpdateSelfPassword)

	// 密码保险库：全量列表 + 增删改
	userGroup.GET("/passwords", h.GetMyCredentials)
	userGroup.POST("/passwords", h.CreateCredential)
	userGroup.PUT("/passwords/:id", h.UpdateCredential)
	userGroup.DELETE("/passwords/:id", h.DeleteCredential)
	userGroup.GET("/passwords/count", h.GetCredentialCount)

	userGroup.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong with auth"})
	})
}
