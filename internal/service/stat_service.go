package service

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/common"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
)

type SystemStats struct {
	UserCount       int64 `json:"user_count"`
	CredentialCount int64 `json:"credential_count"`
}

type StatService struct {
	users       repository.UserStore
	credentials repository.CredentialStore
}

func NewStatService(users repository.UserStore, credentials repository.CredentialStore) *StatService {
	return &StatService{users: users, credentials: credentials}
}

// GetStats 全站统计（管理员面板用）
func (s *StatService) GetStats() (*SystemStats, error) {
	userCount, err := s.users.CountAll()
	if err != nil {
		return nil, common.NewServiceError(common.ErrorCodeInternal, "获取统计信息失败")
	}
	credentialCount, err := s.credentials.CountAll()
	if err != nil {
		return nil, common.NewServiceError(common.ErrorCodeInternal, "获取统计信息失败")
	}
	return &SystemStats{
		UserCount:       userCount,
		CredentialCount: credentialCount,
	}, nil
}
