package router

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/middleware"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler  *handler.Handler
	auth     *service.AuthService
	settings *service.SettingsService
	users    repository.UserStore
}

func NewRouter(
	h *handler.Handler,
	auth *service.AuthService,
	settings *service.SettingsService,
	users repository.UserStore,
) *Router {
	return &Router{
		handler:  h,
		auth:     auth,
		settings: settings,
		users:    users,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.settings))

	// 认证限流：多个域路由复用同一个实例，保持行为一致
	authLimiter := middleware.RateLimitMiddleware(rt.settings, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler, rt.auth)
	registerUserRoutes(api, rt.handler, rt.auth, rt.users)
	registerAdminRoutes(api, rt.handler, rt.auth, rt.users)
}
