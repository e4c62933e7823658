package service_test

import (
	"testing"
	"time"

	"github.com/crumpledflowers/vault-guard-cli/internal/common"
	"github.com/crumpledflowers/vault-guard-cli/internal/config"
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/model"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"
	"github.com/crumpledflowers/vault-guard-cli/internal/testutils"
	"github.com/crumpledflowers/vault-guard-cli/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*service.AuthService, *service.SettingsService, *gorm.DB) {
	t.Helper()
	config.InitConfig(t.TempDir())
	gormDB := testutils.SetupDB(t)
	settings := service.NewSettingsService(repository.NewSettingRepository(gormDB))
	authService := service.NewAuthService(repository.NewUserRepository(gormDB), settings)
	return authService, settings, gormDB
}

func TestAuthService_FirstUserBecomesAdmin(t *testing.T) {
	authService, settings, gormDB := newAuthService(t)

	// 即使注册关闭，首个用户也必须能注册，否则无法完成初始化
	if err := settings.Set(consts.ConfigAllowRegister, "false"); err != nil {
		t.Fatalf("关闭注册失败: %v", err)
	}

	if err := authService.RegisterUser("admin", "password1"); err != nil {
		t.Fatalf("首个用户注册失败: %v", err)
	}

	var user model.User
	if err := gormDB.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}
	if !user.Admin {
		t.Error("首个用户应自动成为管理员")
	}
	if user.Status != 1 {
		t.Errorf("新用户状态应为正常(1)，实际为 %d", user.Status)
	}

	// 第二个用户受注册开关限制
	err := authService.RegisterUser("second", "password1")
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeForbidden {
		t.Errorf("注册关闭时应返回 forbidden，实际为 %v", err)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	authService, _, _ := newAuthService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"用户名过短", "ab", "password1"},
		{"用户名纯数字", "12345", "password1"},
		{"用户名非法字符", "user name", "password1"},
		{"密码过短", "alice", "pw1"},
		{"密码缺少数字", "alice", "passwordonly"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authService.RegisterUser(tc.username, tc.password)
			serviceErr, ok := common.AsServiceError(err)
			if !ok || serviceErr.Code != common.ErrorCodeValidation {
				t.Errorf("期望 validation 错误，实际为 %v", err)
			}
		})
	}
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	authService, _, _ := newAuthService(t)

	if err := authService.RegisterUser("alice", "password1"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	err := authService.RegisterUser("alice", "password2")
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeConflict {
		t.Errorf("重复用户名应返回 conflict，实际为 %v", err)
	}
}

func TestAuthService_LoginIssuesValidToken(t *testing.T) {
	authService, _, _ := newAuthService(t)

	if err := authService.RegisterUser("alice", "password1"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	token, err := authService.LoginUser("alice", "password1")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	claims, err := utils.ParseLoginToken(token)
	if err != nil {
		t.Fatalf("Token 解析失败: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Token 用户名不符: %q", claims.Username)
	}
	if claims.RegisteredClaims.ID == "" {
		t.Error("Token 应携带 jti")
	}
}

func TestAuthService_LoginWrongCredentials(t *testing.T) {
	authService, _, _ := newAuthService(t)

	if err := authService.RegisterUser("alice", "password1"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 用户不存在和密码错误返回同样的错误，不泄露用户存在性
	for _, tc := range []struct{ username, password string }{
		{"alice", "wrongpass1"},
		{"nobody", "password1"},
	} {
		_, err := authService.LoginUser(tc.username, tc.password)
		serviceErr, ok := common.AsServiceError(err)
		if !ok || serviceErr.Code != common.ErrorCodeUnauthorized {
			t.Errorf("登录 %s 期望 unauthorized，实际为 %v", tc.username, err)
		}
		if serviceErr != nil && serviceErr.Message != "用户名或密码错误" {
			t.Errorf("错误消息应统一，实际为 %q", serviceErr.Message)
		}
	}
}

func TestAuthService_LoginBlockedByStatus(t *testing.T) {
	authService, _, gormDB := newAuthService(t)

	if err := authService.RegisterUser("alice", "password1"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	for _, status := range []int{2, 3} {
		if err := gormDB.Model(&model.User{}).Where("username = ?", "alice").
			Update("status", status).Error; err != nil {
			t.Fatalf("更新状态失败: %v", err)
		}

		_, err := authService.LoginUser("alice", "password1")
		serviceErr, ok := common.AsServiceError(err)
		if !ok || serviceErr.Code != common.ErrorCodeForbidden {
			t.Errorf("状态 %d 登录应返回 forbidden，实际为 %v", status, err)
		}
	}
}

func TestAuthService_RevokeToken(t *testing.T) {
	authService, _, _ := newAuthService(t)

	claims := &utils.LoginClaims{
		ID:       1,
		Username: "alice",
		Type:     "login",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-test-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	if authService.IsTokenRevoked("jti-test-1") {
		t.Fatal("吊销前不应命中名单")
	}

	authService.RevokeToken(claims)

	if !authService.IsTokenRevoked("jti-test-1") {
		t.Error("吊销后应命中名单")
	}
	if authService.IsTokenRevoked("other-jti") {
		t.Error("其他 jti 不应受影响")
	}
}

func TestAuthService_RevokeExpiredTokenIsNoop(t *testing.T) {
	authService, _, _ := newAuthService(t)

	claims := &utils.LoginClaims{
		ID:   1,
		Type: "login",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	// 已过期的 Token 无需吊销，解析阶段就会拒绝
	authService.RevokeToken(claims)

	if authService.IsTokenRevoked("jti-expired") {
		t.Error("过期 Token 不应进入吊销名单")
	}
}

func TestAuthService_VerifyCaptchaDisabled(t *testing.T) {
	authService, settings, _ := newAuthService(t)

	if err := settings.Set(consts.ConfigCaptchaEnabled, "false"); err != nil {
		t.Fatalf("关闭验证码失败: %v", err)
	}

	ok, _ := authService.VerifyCaptchaChallenge("", "")
	if !ok {
		t.Error("验证码关闭时应直接放行")
	}
}

func TestAuthService_VerifyCaptchaEnabledRequiresAnswer(t *testing.T) {
	authService, settings, _ := newAuthService(t)

	if err := settings.Set(consts.ConfigCaptchaEnabled, "true"); err != nil {
		t.Fatalf("开启验证码失败: %v", err)
	}

	ok, msg := authService.VerifyCaptchaChallenge("", "")
	if ok {
		t.Error("开启验证码后缺少答案应被拒绝")
	}
	if msg == "" {
		t.Error("拒绝时应返回提示消息")
	}

	ok, _ = authService.VerifyCaptchaChallenge("no-such-id", "1234")
	if ok {
		t.Error("错误的验证码应被拒绝")
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	authService, _, _ := newAuthService(t)

	if err := authService.RegisterUser("alice", "password1"); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	user, err := authService.GetUser(1)
	if err != nil {
		t.Fatalf("查询用户失败: %v", err)
	}

	// 原密码错误
	err = authService.ChangePassword(user.ID, "wrongpass1", "newpassword1")
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeValidation {
		t.Errorf("原密码错误应返回 validation，实际为 %v", err)
	}

	// 新密码不符合要求
	err = authService.ChangePassword(user.ID, "password1", "short")
	serviceErr, ok = common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeValidation {
		t.Errorf("弱密码应返回 validation，实际为 %v", err)
	}

	// 正常修改后旧密码失效
	if err := authService.ChangePassword(user.ID, "password1", "newpassword1"); err != nil {
		t.Fatalf("修改密码失败: %v", err)
	}
	if _, err := authService.LoginUser("alice", "password1"); err == nil {
		t.Error("旧密码应失效")
	}
	if _, err := authService.LoginUser("alice", "newpassword1"); err != nil {
		t.Errorf("新密码应可登录: %v", err)
	}
}
