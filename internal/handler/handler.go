package handler

import "github.com/crumpledflowers/vault-guard-cli/internal/service"

type Handler struct {
	authService     *service.AuthService
	vaultService    *service.VaultService
	settingsService *service.SettingsService
	statService     *service.StatService
}

func NewHandler(
	authService *service.AuthService,
	vaultService *service.VaultService,
	settingsService *service.SettingsService,
	statService *service.StatService,
) *Handler {
	return &Handler{
		authService:     authService,
		vaultService:    vaultService,
		settingsService: settingsService,
		statService:     statService,
	}
}
