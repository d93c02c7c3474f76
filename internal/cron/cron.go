package cron

import (
	"context"
	"fmt"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger *zap.Logger
	conf   *config.Configuration
	trace  *telemetry.Trace
	ws     *service.Workspace
	server *cron.Cron
}

// NewCron spec 含秒，例如 "*/30 * * * * *"
func NewCron(logger *zap.Logger, conf *config.Configuration, trace *telemetry.Trace, ws *service.Workspace) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger: logger,
		conf:   conf,
		trace:  trace,
		ws:     ws,
		server: server,
	}
}

func (c *Cron) Run() error {
	if spec := c.conf.Store.ResyncSpec; spec != "" {
		if _, err := c.server.AddFunc(spec, c.Resync); err != nil {
			return fmt.Errorf("schedule store resync %q: %w", spec, err)
		}
		c.logger.Info("store resync scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

// Resync 重新讀取所有 slot，讓多個實例收斂到最後一次寫入
func (c *Cron) Resync() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx, span, end := c.trace.WithSpan(ctx, string(core.SpanResyncJob))

	start := time.Now()
	err := c.ws.Registry.ReloadAll(ctx)
	c.trace.ApplyTraceAttributes(span, core.TraceStoreMeta{Op: "reload", Count: len(c.ws.Registry.Names())})
	end(err)
	if err != nil {
		c.logger.Error("store resync failed", zap.Error(err))
		return
	}
	c.logger.Debug("store resynced", zap.Duration("duration", time.Since(start)))
}

func (c *Cron) Stop(ctx context.Context) error {
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
