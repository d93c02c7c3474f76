package repository

import (
	"context"
	"encoding/json"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/client"
	"hrdesk/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Audit Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Fluentd
	version       string
}

func NewLogRepository(config *config.Configuration, fluentdClient client.Fluentd) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: fluentdClient, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogAudit(ctx context.Context, audit model.AuditLog) error {
	if audit.LoggedAt == "" {
		audit.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if audit.Version == "" {
		audit.Version = repository.version
	}
	return repository.post(ctx, core.FluentdAudit, audit)
}

// post fluent 的 msgpack 編碼吃 map，先轉一次 json 讓欄位名與 json tag 一致
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var message map[string]any
	if err := json.Unmarshal(b, &message); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), message)
}
