// Package store 是記憶體中的資料狀態，每次變更都同步序列化回對應的 slot。
//
// Collection 管理一個有序列表，Value 管理單一值；兩者都掛在 Registry 上，
// 由 Registry 統一載入、重新同步與重置。
package store

import (
	"context"
	"encoding/json"
	"errors"

	"hrdesk/internal/core"
)

var (
	// ErrCorruptSlot slot 內容無法解碼
	ErrCorruptSlot = errors.New("store: corrupt slot")
	// ErrDuplicateKey 建立時 key 已存在
	ErrDuplicateKey = errors.New("store: duplicate key")
	// ErrEmptyKey 使用自帶 key 的 collection 建立時沒給 key
	ErrEmptyKey = errors.New("store: empty key")
)

// Op 變更類型
type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
	OpReset   Op = "reset"
	OpReload  Op = "reload"
)

// Change 提交後通知 observer 的內容
type Change struct {
	Slot    core.SlotName
	Op      Op
	Key     string
	Records int
}

// Observer 在變更寫入 slot 之後才會被呼叫
type Observer interface {
	StoreChanged(ctx context.Context, change Change)
}

type ObserverFunc func(ctx context.Context, change Change)

func (f ObserverFunc) StoreChanged(ctx context.Context, change Change) { f(ctx, change) }

// Placement 新資料放在列表前面或後面
type Placement int

const (
	Prepend Placement = iota
	Append
)

// clone 以 JSON 深拷貝，確保 mutate 失敗時不會動到已提交的資料
func clone[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
