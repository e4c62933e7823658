package repository

import "github.com/crumpledflowers/vault-guard-cli/internal/model"

type SettingStore interface {
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	// Upsert 按 key 更新配置值，不存在时创建
	Upsert(key string, value string) error
	CountByKey(key string) (int64, error)
	ListAll() ([]model.Setting, error)
}
