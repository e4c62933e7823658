package repository

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/model"

	"gorm.io/gorm"
)

type CredentialRepository struct {
	db *gorm.DB
}

func (r *CredentialRepository) ListByUserID(userID uint) ([]model.Credential, error) {
	var credentials []model.Credential
	// created_at 相同时用 id 兜底，保证排序稳定
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&credentials).Error; err != nil {
		return nil, err
	}
	return credentials, nil
}

func (r *CredentialRepository) FindByIDAndUserID(id uint, userID uint) (*model.Credential, error) {
	var credential model.Credential
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&credential).Error; err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *CredentialRepository) Create(credential *model.Credential) error {
	return r.db.Create(credential).Error
}

func (r *CredentialRepository) UpdateByIDAndUserID(id uint, userID uint, update CredentialUpdate) (int64, error) {
	// Select 强制写入全部四个字段，空字符串也会覆盖旧值
	result := r.db.Model(&model.Credential{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("website", "username", "password", "notes").
		Updates(map[string]interface{}{
			"website":  update.Website,
			"username": update.Username,
			"password": update.Password,
			"notes":    update.Notes,
		})
	return result.RowsAffected, result.Error
}

func (r *CredentialRepository) DeleteByIDAndUserID(id uint, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Credential{})
	return result.RowsAffected, result.Error
}

func (r *CredentialRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Credential{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CredentialRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Credential{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
