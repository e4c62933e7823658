//go:build wireinject
// +build wireinject

package di

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/handler"
	"github.com/crumpledflowers/vault-guard-cli/internal/repository"
	"github.com/crumpledflowers/vault-guard-cli/internal/router"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		repository.NewUserRepository,
		repository.NewCredentialRepository,
		repository.NewSettingRepository,
		service.NewSettingsService,
		service.NewAuthService,
		service.NewVaultService,
		service.NewStatService,
		handler.NewHandler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
