package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/middleware"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(env *handlerEnv) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", env.handler.Register)
	api.POST("/login", env.handler.Login)
	api.POST("/logout", middleware.JWTAuth(env.auth), env.handler.Logout)
	api.GET("/register", env.handler.GetRegisterState)
	api.GET("/captcha", env.handler.GetCaptcha)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	env := newHandlerEnv(t)
	r := newAuthRouter(env)

	// 注册
	w := postJSON(r, "/api/register", `{"username":"alice","password":"password1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("注册期望 200，实际为 %d (%s)", w.Code, w.Body.String())
	}

	// 登录拿 Token
	w = postJSON(r, "/api/login", `{"username":"alice","password":"password1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("登录期望 200，实际为 %d (%s)", w.Code, w.Body.String())
	}
	token, ok := decodeBody(t, w)["token"].(string)
	if !ok || token == "" {
		t.Fatal("登录响应应包含 token")
	}

	// 退出
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("退出期望 200，实际为 %d", w.Code)
	}

	// 退出后同一 Token 失效
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("已吊销的 Token 期望 401，实际为 %d", w.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newHandlerEnv(t)
	r := newAuthRouter(env)

	postJSON(r, "/api/register", `{"username":"alice","password":"password1"}`)

	w := postJSON(r, "/api/login", `{"username":"alice","password":"wrongpass1"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("密码错误期望 401，实际为 %d", w.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := newHandlerEnv(t)
	r := newAuthRouter(env)

	w := postJSON(r, "/api/login", `{"username":"alice"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少字段期望 400，实际为 %d", w.Code)
	}
}

func TestRegister_ClosedRegistration(t *testing.T) {
	env := newHandlerEnv(t)
	r := newAuthRouter(env)

	// 先注册首个用户（管理员），再关闭注册
	postJSON(r, "/api/register", `{"username":"admin","password":"password1"}`)
	env.settings.Set(consts.ConfigAllowRegister, "false")

	w := postJSON(r, "/api/register", `{"username":"bob","password":"password1"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("注册关闭期望 403，实际为 %d", w.Code)
	}

	// 注册开关状态接口
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/register", nil))
	body := decodeBody(t, w)
	if body["allow_register"].(bool) {
		t.Error("注册开关状态应为 false")
	}
}

func TestGetCaptcha_Disabled(t *testing.T) {
	env := newHandlerEnv(t)
	env.settings.Set(consts.ConfigCaptchaEnabled, "false")
	r := newAuthRouter(env)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/captcha", nil))

	body := decodeBody(t, w)
	if body["enabled"].(bool) {
		t.Error("验证码关闭时 enabled 应为 false")
	}
}

func TestGetCaptcha_Enabled(t *testing.T) {
	env := newHandlerEnv(t)
	env.settings.Set(consts.ConfigCaptchaEnabled, "true")
	r := newAuthRouter(env)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/captcha", nil))

	body := decodeBody(t, w)
	if !body["enabled"].(bool) {
		t.Fatal("验证码开启时 enabled 应为 true")
	}
	if body["captcha_id"] == "" || body["image"] == "" {
		t.Error("应返回验证码 id 和图片")
	}
}

func TestLogin_CaptchaRequiredWhenEnabled(t *testing.T) {
	env := newHandlerEnv(t)
	r := newAuthRouter(env)

	postJSON(r, "/api/register", `{"username":"alice","password":"password1"}`)
	env.settings.Set(consts.ConfigCaptchaEnabled, "true")

	w := postJSON(r, "/api/login", `{"username":"alice","password":"password1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("开启验证码后未携带验证码期望 400，实际为 %d", w.Code)
	}
}
