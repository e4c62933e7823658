package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User       UserStore
	Credential CredentialStore
	Setting    SettingStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewCredentialRepository(db *gorm.DB) CredentialStore {
	return &CredentialRepository{db: db}
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

func NewRepositories(user UserStore, credential CredentialStore, setting SettingStore) *Repositories {
	return &Repositories{
		User:       user,
		Credential: credential,
		Setting:    setting,
	}
}
