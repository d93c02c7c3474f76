package store

import (
	"github.com/google/uuid"
)

// NextInt 數字 id：max(0, 既有 id) + 1
func NextInt(keys []int) int {
	next := 0
	for _, k := range keys {
		if k > next {
			next = k
		}
	}
	return next + 1
}

// NextUUID 字串 id 使用 UUIDv7（依時間排序）
func NextUUID(keys []string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
