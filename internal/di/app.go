package di

import (
	"github.com/crumpledflowers/vault-guard-cli/internal/router"
	"github.com/crumpledflowers/vault-guard-cli/internal/service"
)

type Application struct {
	Router   *router.Router
	Settings *service.SettingsService
}

func NewApplication(r *router.Router, settings *service.SettingsService) *Application {
	return &Application{
		Router:   r,
		Settings: settings,
	}
}
