// Package slot 定義 durable slot 後端：一個名稱對應一個序列化後的值
package slot

import (
	"context"
	"errors"

	"hrdesk/internal/core"
)

// ErrNotFound slot 從未寫入或已被刪除
var ErrNotFound = errors.New("slot: not found")

// Backend 由 memory / sqlite / redis / mongo 實作
type Backend interface {
	Get(ctx context.Context, name core.SlotName) ([]byte, error)
	Set(ctx context.Context, name core.SlotName, value []byte) error
	Delete(ctx context.Context, name core.SlotName) error
	Names(ctx context.Context) ([]core.SlotName, error)
	Driver() core.StorageDriver
}
