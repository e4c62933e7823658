package handler

import (
	"net/http"

	"github.com/crumpledflowers/vault-guard-cli/internal/common/httpx"
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"

	"github.com/gin-gonic/gin"
)

// GetSiteInfo 站点公开信息（无需登录）
func (h *Handler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site_name":        h.settingsService.GetString(consts.ConfigSiteName),
		"site_description": h.settingsService.GetString(consts.ConfigSiteDescription),
		"allow_register":   h.settingsService.GetBool(consts.ConfigAllowRegister),
		"captcha_enabled":  h.settingsService.GetBool(consts.ConfigCaptchaEnabled),
		"version":          consts.ApplicationVersion,
	})
}

// AdminGetStats 全站统计
func (h *Handler) AdminGetStats(c *gin.Context) {
	stats, err := h.statService.GetStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计信息失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminListSettings 列出全部运行时配置
func (h *Handler) AdminListSettings(c *gin.Context) {
	settings, err := h.settingsService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取配置失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": settings})
}

// AdminUpdateSetting 更新单个运行时配置项
func (h *Handler) AdminUpdateSetting(c *gin.Context) {
	var req struct {
		Key   string `json:"key" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.settingsService.Set(req.Key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存配置失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "保存成功"})
}
