package handler

import (
	"net/http"

	"github.com/crumpledflowers/vault-guard-cli/internal/common/httpx"
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type registerRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if verified, msg := h.authService.VerifyCaptchaChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "登录成功",
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if verified, msg := h.authService.VerifyCaptchaChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.authService.RegisterUser(req.Username, req.Password); err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "注册成功"})
}

// Logout 吊销当前 Token（jti 进入吊销名单直至自然过期）
func (h *Handler) Logout(c *gin.Context) {
	value, exists := c.Get("claims")
	claims, ok := value.(*utils.LoginClaims)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	h.authService.RevokeToken(claims)
	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}

// GetRegisterState 查询注册开关（登录页用）
func (h *Handler) GetRegisterState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allow_register": h.settingsService.GetBool(consts.ConfigAllowRegister),
	})
}

// GetCaptcha 生成图形验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.settingsService.GetBool(consts.ConfigCaptchaEnabled) {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	id, b64s, _, err := utils.MakeCaptcha()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "验证码生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled":    true,
		"captcha_id": id,
		"image":      b64s,
	})
}
