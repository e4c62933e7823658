package handler

import (
	"net/http"

	"github.com/crumpledflowers/vault-guard-cli/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSelfInfo(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	user, err := h.authService.GetUser(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateSelfPassword 修改账号登录密码
func (h *Handler) UpdateSelfPassword(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.authService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, "修改失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码修改成功"})
}
