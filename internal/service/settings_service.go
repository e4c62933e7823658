package service

import (
	"log"
	"strconv"
	"sync"

	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/model"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

const maskedSettingValue = "**********"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Vault Guard", Desc: "站点名称"},
	{Key: consts.ConfigSiteDescription, Value: "A self-hosted password vault", Desc: "站点描述"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)"},
	{Key: consts.ConfigCaptchaEnabled, Value: "false", Desc: "登录/注册是否需要图形验证码"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Desc: "认证接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "1", Desc: "接口最大请求体限制 (MB)"},
	{Key: consts.ConfigMaxCredentialsPerUser, Value: "0", Desc: "单用户最多可保存的密码条目数 (0 为不限制)"},
}

type SettingsService struct {
	store repository.SettingStore

	// 内存缓存
	cache sync.Map
}

func NewSettingsService(store repository.SettingStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) ClearCache() {
	s.cache.Range(func(key, value interface{}) bool {
		s.cache.Delete(key)
		return true
	})
}

// InitializeSettings 补齐数据库中缺失的默认配置项
func (s *SettingsService) InitializeSettings() {
	for _, def := range DefaultSettings {
		count, err := s.store.CountByKey(def.Key)
		if err != nil {
			log.Printf("❌ 初始化配置项 %s 失败: %v", def.Key, err)
			continue
		}
		if count == 0 {
			newSetting := def
			_ = s.store.Create(&newSetting)
		}
	}
}

func (s *SettingsService) GetString(key string) string {
	if val, ok := s.cache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.cache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.store.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				// 查到了默认值，写入数据库并写入缓存
				newSetting := def
				// 尝试写入数据库 (忽略错误，防止并发写入导致的唯一键冲突)
				_ = s.store.Create(&newSetting)

				s.cache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		s.cache.Store(key, DefaultValueNotFound)
		return ""
	}
	// 数据库查到，写入缓存
	s.cache.Store(key, setting.Value)

	return setting.Value
}

func (s *SettingsService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *SettingsService) GetInt64(key string) int64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *SettingsService) GetFloat(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *SettingsService) GetBool(key string) bool {
	return s.GetString(key) == "true"
}

// Set 更新配置项并刷新缓存
func (s *SettingsService) Set(key string, value string) error {
	if err := s.store.Upsert(key, value); err != nil {
		return err
	}
	s.cache.Store(key, value)
	return nil
}

// ListAll 列出全部配置项，敏感项统一脱敏
func (s *SettingsService) ListAll() ([]model.Setting, error) {
	settings, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range settings {
		if settings[i].Sensitive {
			settings[i].Value = maskedSettingValue
		}
	}
	return settings, nil
}
