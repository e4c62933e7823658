package service

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/common"
	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/model"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
)

// CredentialPayload 创建/更新密码记录的载荷。
// 四个字段整体提交整体替换，不支持部分字段更新。
// 字段是否为空由前端表单约束，服务端不做校验（与存储层约定一致）。
type CredentialPayload struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

type VaultService struct {
	credentials repository.CredentialStore
	settings    *SettingsService
}

func NewVaultService(credentials repository.CredentialStore, settings *SettingsService) *VaultService {
	return &VaultService{credentials: credentials, settings: settings}
}

// ListCredentials 返回用户全量密码记录，按 created_at 倒序
func (s *VaultService) ListCredentials(userID uint) ([]model.Credential, error) {
	credentials, err := s.credentials.ListByUserID(userID)
	if err != nil {
		return nil, common.NewServiceError(common.ErrorCodeInternal, "获取密码列表失败")
	}
	if credentials == nil {
		// 空库返回空数组而不是 null，客户端据此区分"空"与"出错"
		credentials = []model.Credential{}
	}
	return credentials, nil
}

// CreateCredential 新增密码记录，id 和 created_at 由存储层分配
func (s *VaultService) CreateCredential(userID uint, payload CredentialPayload) (*model.Credential, error) {
	if maxCount := s.settings.GetInt64(consts.ConfigMaxCredentialsPerUser); maxCount > 0 {
		count, err := s.credentials.CountByUserID(userID)
		if err != nil {
			return nil, common.NewServiceError(common.ErrorCodeInternal, "添加失败，请稍后重试")
		}
		if count >= maxCount {
			return nil, common.NewServiceError(common.ErrorCodeForbidden, "密码条目数量已达上限")
		}
	}

	credential := model.Credential{
		Website:  payload.Website,
		Username: payload.Username,
		Password: payload.Password,
		Notes:    payload.Notes,
		UserID:   userID,
	}
	if err := s.credentials.Create(&credential); err != nil {
		return nil, common.NewServiceError(common.ErrorCodeInternal, "添加失败，请稍后重试")
	}
	return &credential, nil
}

// UpdateCredential 整体替换一条记录的可编辑字段
func (s *VaultService) UpdateCredential(userID uint, id uint, payload CredentialPayload) error {
	rows, err := s.credentials.UpdateByIDAndUserID(id, userID, repository.CredentialUpdate{
		Website:  payload.Website,
		Username: payload.Username,
		Password: payload.Password,
		Notes:    payload.Notes,
	})
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "修改失败，请稍后重试")
	}
	if rows == 0 {
		return common.NewServiceError(common.ErrorCodeNotFound, "密码不存在或无权修改")
	}
	return nil
}

// DeleteCredential 删除一条记录；目标不存在时报错而不是静默成功
func (s *VaultService) DeleteCredential(userID uint, id uint) error {
	rows, err := s.credentials.DeleteByIDAndUserID(id, userID)
	if err != nil {
		return common.NewServiceError(common.ErrorCodeInternal, "删除失败，请稍后重试")
	}
	if rows == 0 {
		return common.NewServiceError(common.ErrorCodeNotFound, "密码不存在或无权删除")
	}
	return nil
}

// CountCredentials 用户的密码条目数
func (s *VaultService) CountCredentials(userID uint) (int64, error) {
	count, err := s.credentials.CountByUserID(userID)
	if err != nil {
		return 0, common.NewServiceError(common.ErrorCodeInternal, "获取统计信息失败")
	}
	return count, nil
}
