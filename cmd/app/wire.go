//go:build wireinject
// +build wireinject

package main

import (
	"hrdesk/config"
	"hrdesk/internal/command"
	"hrdesk/internal/cron"
	"hrdesk/internal/database"
	"hrdesk/internal/handler"
	"hrdesk/internal/i18n"
	"hrdesk/internal/middleware"
	"hrdesk/internal/router"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/internal/websocket"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			i18n.ProviderSet,
			websocket.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			websocket.ProviderSet,
			telemetry.ProviderSet,
			wire.NewSet(service.NewStoreAudit, service.ProvideWorkspace, service.NewExportService),
			command.ProviderSet,
		),
	)
}
