package client

import (
	"context"
	"time"

	"hrdesk/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// Fluentd 讓 log repository 不必知道是否真的有連線
type Fluentd interface {
	Post(ctx context.Context, tag string, record any) error
	Close() error
}

// FluentdClient implements Fluentd using fluent-logger-golang.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient FLUENTD__ENABLED=false 時回傳 NoopClient
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (Fluentd, func(), error) {
	if !config.Fluentd.Enabled {
		return NoopClient{}, func() {}, nil
	}
	prefix := config.App.Name
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost:  config.Fluentd.Host,
		FluentPort:  config.Fluentd.Port,
		Timeout:     timeout,
		TagPrefix:   prefix,
		Async:       true,
		BufferLimit: config.Fluentd.BufferLimit,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Fluentd", zap.String("host", config.Fluentd.Host))

	fluentdClient := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post tag 會由 fluent 自動加上 TagPrefix，例如 "request_log" => "hrdesk.request_log"
func (c *FluentdClient) Post(_ context.Context, tag string, record any) error {
	return c.client.Post(tag, record)
}

// NoopClient 停用 fluentd 時使用
type NoopClient struct{}

func (NoopClient) Post(context.Context, string, any) error { return nil }
func (NoopClient) Close() error                            { return nil }
