package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hrdesk/config"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteClient 連接 SQLite（modernc 純 Go driver）
type SQLiteClient struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteClient(logger *zap.Logger, config *config.Configuration) (*SQLiteClient, func(), error) {
	db, err := openSQLite(config.SQLite.Path)
	if err != nil {
		logger.Error("failed to open SQLite", zap.String("path", config.SQLite.Path), zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to SQLite", zap.String("path", config.SQLite.Path))

	sqliteClient := &SQLiteClient{db: db, logger: logger}
	cleanup := func() {
		logger.Info("closing the SQLite resources")
		if err := sqliteClient.Close(); err != nil {
			logger.Error("failed to close SQLite", zap.Error(err))
		}
	}
	return sqliteClient, cleanup, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	dsn := path
	if path != ":memory:" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = path + sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// 每條連線各自一個記憶體資料庫
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Close 關閉 SQLite 連線
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// DB 回傳 SQLite 連線
func (c *SQLiteClient) DB() *sql.DB {
	return c.db
}
