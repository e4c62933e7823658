package service

import (
	"context"
	"sync"
	"time"

	"github.com/crumpledflowers/vault-guard-cli/internal/common"
	"github.com/crumpledflowers/vault-guard-cli/internal/config"
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/model"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users    repository.UserStore
	settings *SettingsService

	// revokedTokens 内存吊销名单，Redis 不可用时的回退
	// Key: jti (string), Value: 过期时间 (time.Time)
	revokedTokens sync.Map
}

func NewAuthService(users repository.UserStore, settings *SettingsService) *AuthService {
	return &AuthService{users: users, settings: settings}
}

// RegisterUser 注册新用户。第一个注册的用户自动成为管理员。
func (s *AuthService) RegisterUser(username string, password string) error {
	userCount, err := s.users.CountAll()
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "注册失败，请稍后重试")
	}

	// 首个用户不受注册开关限制，否则无法完成初始化
	if userCount > 0 && !s.settings.GetBool(consts.ConfigAllowRegister) {
		return common.NewServiceError(common.ErrorCodeForbidden, "当前未开放注册")
	}

	if ok, msg := utils.ValidateUsername(username); !ok {
		return common.NewServiceError(common.ErrorCodeValidation, msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return common.NewServiceError(common.ErrorCodeValidation, msg)
	}

	exists, err := s.users.UsernameExists(username)
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "注册失败，请稍后重试")
	}
	if exists {
		return common.NewServiceError(common.ErrorCodeConflict, "用户名已被占用")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "注册失败，请稍后重试")
	}

	user := model.User{
		Username: username,
		Password: string(hashed),
		Admin:    userCount == 0,
		Status:   1,
	}
	if err := s.users.Create(&user); err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "注册失败，请稍后重试")
	}
	return nil
}

// LoginUser 校验用户名密码并签发登录 Token
func (s *AuthService) LoginUser(username string, password string) (string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return "", common.NewServiceError(common.ErrorCodeUnauthorized, "用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", common.NewServiceError(common.ErrorCodeUnauthorized, "用户名或密码错误")
	}

	if user.Status == 2 {
		return "", common.NewServiceError(common.ErrorCodeForbidden, "该账号已被封禁")
	}
	if user.Status == 3 {
		return "", common.NewServiceError(common.ErrorCodeForbidden, "该账号已停用")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Admin, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", common.NewServiceError(common.ErrorCodeInternal, "登录失败，请稍后重试")
	}

	return token, nil
}

// VerifyCaptchaChallenge 当开启验证码时校验图形验证码
func (s *AuthService) VerifyCaptchaChallenge(captchaID string, captchaAnswer string) (bool, string) {
	if !s.settings.GetBool(consts.ConfigCaptchaEnabled) {
		return true, ""
	}
	if captchaID == "" || captchaAnswer == "" {
		return false, "请完成验证码"
	}
	if !utils.VerifyCaptcha(captchaID, captchaAnswer) {
		return false, "验证码错误或已过期"
	}
	return true, ""
}

// RevokeToken 吊销一个登录 Token（退出登录）。
// 优先写 Redis，未启用时回退到内存名单；TTL 为 Token 剩余有效期。
func (s *AuthService) RevokeToken(claims *utils.LoginClaims) {
	if claims.ID == 0 && claims.RegisteredClaims.ID == "" {
		return
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		// Token 已过期，无需吊销
		return
	}

	jti := claims.RegisteredClaims.ID
	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := RedisKey("auth", "revoked", jti)
		if err := redisClient.Set(ctx, key, "1", ttl).Err(); err == nil {
			return
		}
		// Redis 写入失败时落内存，保证吊销不丢
	}

	s.revokedTokens.Store(jti, time.Now().Add(ttl))
	s.sweepRevoked()
}

// IsTokenRevoked 检查 jti 是否在吊销名单内
func (s *AuthService) IsTokenRevoked(jti string) bool {
	if jti == "" {
		return false
	}

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := RedisKey("auth", "revoked", jti)
		if exists, err := redisClient.Exists(ctx, key).Result(); err == nil && exists > 0 {
			return true
		}
	}

	val, ok := s.revokedTokens.Load(jti)
	if !ok {
		return false
	}
	expiresAt, typeOk := val.(time.Time)
	if !typeOk || time.Now().After(expiresAt) {
		s.revokedTokens.Delete(jti)
		return false
	}
	return true
}

// sweepRevoked 顺带清理内存名单里已过期的条目
func (s *AuthService) sweepRevoked() {
	now := time.Now()
	s.revokedTokens.Range(func(key, value interface{}) bool {
		if expiresAt, ok := value.(time.Time); ok && now.After(expiresAt) {
			s.revokedTokens.Delete(key)
		}
		return true
	})
}

// ChangePassword 修改账号登录密码
func (s *AuthService) ChangePassword(userID uint, oldPassword string, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return common.NewServiceError(common.ErrorCodeNotFound, "用户不存在")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return common.NewServiceError(common.ErrorCodeValidation, "原密码错误")
	}

	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return common.NewServiceError(common.ErrorCodeValidation, msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "修改失败，请稍后重试")
	}

	if err := s.users.UpdatePasswordByID(userID, string(hashed)); err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "修改失败，请稍后重试")
	}
	return nil
}

// GetUser 查询用户信息
func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, common.NewServiceError(common.ErrorCodeNotFound, "用户不存在")
	}
	return user, nil
}
