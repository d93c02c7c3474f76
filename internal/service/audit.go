package service

import (
	"context"

	"hrdesk/internal/core"
	"hrdesk/internal/database/fluentd/model"
	"hrdesk/internal/database/fluentd/repository"
	"hrdesk/internal/store"
	"hrdesk/internal/telemetry"
	"hrdesk/internal/websocket"

	"go.uber.org/zap"
)

// StoreAudit 每次 store 提交後：更新指標、送 fluentd audit log、推播 websocket
type StoreAudit struct {
	logger  *zap.Logger
	metric  *telemetry.Metric
	logRepo *repository.LogRepository
	hub     *websocket.Hub
}

func NewStoreAudit(
	logger *zap.Logger,
	metric *telemetry.Metric,
	logRepo *repository.LogRepository,
	hub *websocket.Hub,
) *StoreAudit {
	return &StoreAudit{logger: logger, metric: metric, logRepo: logRepo, hub: hub}
}

func (a *StoreAudit) StoreChanged(ctx context.Context, change store.Change) {
	a.metric.ObserveMutation(change.Slot, string(change.Op), change.Records)

	// resync 只是重新讀取，不算使用者操作
	if change.Op == store.OpReload {
		return
	}

	meta := core.RequestMetaFrom(ctx)
	a.logger.Debug("store changed",
		zap.String("slot", string(change.Slot)),
		zap.String("op", string(change.Op)),
		zap.String("key", change.Key),
		zap.Int("records", change.Records),
		zap.String("requestId", meta.RequestID),
	)

	if a.logRepo != nil {
		err := a.logRepo.LogAudit(ctx, model.AuditLog{
			Slot:      string(change.Slot),
			Action:    string(change.Op),
			Key:       change.Key,
			Records:   change.Records,
			RequestID: meta.RequestID,
			Actor:     meta.Actor,
		})
		if err != nil {
			a.logger.Warn("fluentd audit log failed", zap.Error(err))
		}
	}

	var id any
	if change.Key != "" {
		id = change.Key
	}
	a.hub.BroadcastChange(string(change.Slot), string(change.Op), id)
}
