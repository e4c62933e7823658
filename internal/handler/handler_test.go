package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/crumpledflowers/vault-guard-cli/internal/config"
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"
	"github.com/crumpledflowers/vault-guard-cli/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerEnv struct {
	handler  *handler.Handler
	auth     *service.AuthService
	settings *service.SettingsService
	db       *gorm.DB
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	config.InitConfig(t.TempDir())
	gormDB := testutils.SetupDB(t)

	users := repository.NewUserRepository(gormDB)
	credentials := repository.NewCredentialRepository(gormDB)
	settingStore := repository.NewSettingRepository(gormDB)

	settings := service.NewSettingsService(settingStore)
	authService := service.NewAuthService(users, settings)
	vaultService := service.NewVaultService(credentials, settings)
	statService := service.NewStatService(users, credentials)

	return &handlerEnv{
		handler:  handler.NewHandler(authService, vaultService, settings, statService),
		auth:     authService,
		settings: settings,
		db:       gormDB,
	}
}

// asUser 模拟认证中间件注入的用户上下文
func asUser(uid uint, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("id", uid)
		c.Set("username", "testuser")
		c.Set("admin", admin)
		c.Next()
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v (%s)", err, w.Body.String())
	}
	return body
}
