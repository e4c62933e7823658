package router

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/site-info", h.GetSiteInfo)
	api.GET("/register", h.GetRegisterState)
	api.GET("/captcha", h.GetCaptcha)

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
