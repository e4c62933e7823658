package repository

import "github.com/crumpledflowers/vault-guard-cli/internal/model"

// CredentialUpdate 更新时完整替换的四个可编辑字段
type CredentialUpdate struct {
	Website  string
	Username string
	Password string
	Notes    string
}

type CredentialStore interface {
	// ListByUserID 返回用户的全部密码记录，按 created_at 倒序（最新在前）。
	// 排序由查询保证，调用方不做二次排序。
	ListByUserID(userID uint) ([]model.Credential, error)
	FindByIDAndUserID(id uint, userID uint) (*model.Credential, error)
	Create(credential *model.Credential) error
	// UpdateByIDAndUserID 整体替换可编辑字段，返回受影响行数（0 表示记录不存在或不属于该用户）
	UpdateByIDAndUserID(id uint, userID uint, update CredentialUpdate) (int64, error)
	// DeleteByIDAndUserID 返回受影响行数（0 表示记录不存在或不属于该用户）
	DeleteByIDAndUserID(id uint, userID uint) (int64, error)
	CountByUserID(userID uint) (int64, error)
	CountAll() (int64, error)
}
