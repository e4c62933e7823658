package handler

import (
	"net/http"
	"strconv"

	"github.com/crumpledflowers/vault-guard-cli/internal/common/httpx"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

// GetMyCredentials 返回当前用户的全部密码记录。
// 不分页：列表始终是完整集合，排序 (created_at 倒序) 由查询保证。
func (h *Handler) GetMyCredentials(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	credentials, err := h.vaultService.ListCredentials(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取密码列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"list":  credentials,
		"total": len(credentials),
	})
}

// CreateCredential 新增一条密码记录
func (h *Handler) CreateCredential(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	// 字段可以为空：是否必填由前端表单约束，服务端不校验
	var payload service.CredentialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	credential, err := h.vaultService.CreateCredential(uid, payload)
	if err != nil {
		httpx.WriteServiceError(c, err, "添加失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "添加成功",
		"credential": credential,
	})
}

// UpdateCredential 整体替换一条密码记录的可编辑字段
func (h *Handler) UpdateCredential(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的记录ID"})
		return
	}

	var payload service.CredentialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.vaultService.UpdateCredential(uid, uint(id), payload); err != nil {
		httpx.WriteServiceError(c, err, "修改失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "修改成功"})
}

// DeleteCredential 删除一条密码记录
func (h *Handler) DeleteCredential(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的记录ID"})
		return
	}

	if err := h.vaultService.DeleteCredential(uid, uint(id)); err != nil {
		httpx.WriteServiceError(c, err, "删除失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetCredentialCount 当前用户的密码条目数
func (h *Handler) GetCredentialCount(c *gin.Context) {
	userID, _ := c.Get("id")
	uid, ok := userID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return
	}

	count, err := h.vaultService.CountCredentials(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
