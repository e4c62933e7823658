package consts

const (

	// ConfigSiteName 站点名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 站点描述
	ConfigSiteDescription = "site_description"

	// ConfigAllowRegister 是否开放注册 (true/false)
	ConfigAllowRegister = "allow_register"

	// ConfigCaptchaEnabled 登录/注册是否需要图形验证码 (true/false)
	ConfigCaptchaEnabled = "captcha_enabled"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigMaxRequestBodySize 接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigMaxCredentialsPerUser 单用户最多可保存的密码条目数 (0 为不限制)
	ConfigMaxCredentialsPerUser = "max_credentials_per_user"
)
