package database

import (
	"fmt"

	"hrdesk/config"
	"hrdesk/internal/core"
	client "hrdesk/internal/database/client"
	fluentdRepo "hrdesk/internal/database/fluentd/repository"
	mongoRepo "hrdesk/internal/database/mongodb/repository"
	redisRepo "hrdesk/internal/database/redis/repository"
	"hrdesk/internal/database/slot"
	sqliteRepo "hrdesk/internal/database/sqlite/repository"
	"hrdesk/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewFluentdClient,
	fluentdRepo.ProviderSet,
	NewSlotBackend,
)

// NewSlotBackend 依 STORAGE__DRIVER 只連線需要的那一個資料庫，
// 外層依序包上 key 前綴、壓縮與 tracing
func NewSlotBackend(
	logger *zap.Logger,
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
) (slot.Backend, func(), error) {
	driver := core.StorageDriver(conf.Storage.Driver)

	var (
		backend slot.Backend
		cleanup = func() {}
	)
	switch driver {
	case core.StorageMemory:
		backend = slot.NewMemory()
	case core.StorageSQLite, "":
		sqliteClient, closeSQLite, err := client.NewSQLiteClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		repository, err := sqliteRepo.NewSlotRepository(sqliteClient)
		if err != nil {
			closeSQLite()
			return nil, nil, err
		}
		backend, cleanup = repository, closeSQLite
	case core.StorageRedis:
		redisClient, closeRedis, err := client.NewRedisClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		backend, cleanup = redisRepo.NewSlotRepository(redisClient), closeRedis
	case core.StorageMongo:
		mongoClient, closeMongo, err := client.NewMongoClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		backend, cleanup = mongoRepo.NewSlotRepository(mongoClient), closeMongo
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q, want one of %v", driver, core.StorageDrivers)
	}

	backend = slot.NewPrefixed(backend, conf.Storage.KeyPrefix)
	compressed, err := slot.NewCompressed(backend, core.Compression(conf.Storage.Compression), conf.Storage.CompressMinSize)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closeBackend := cleanup
	cleanup = func() {
		if err := compressed.Close(); err != nil {
			logger.Warn("close slot compressor failed", zap.Error(err))
		}
		closeBackend()
	}

	logger.Info("slot backend ready",
		zap.String("driver", string(backend.Driver())),
		zap.String("compression", conf.Storage.Compression),
		zap.String("keyPrefix", conf.Storage.KeyPrefix),
	)
	return slot.NewTraced(compressed, trace, metric), cleanup, nil
}
