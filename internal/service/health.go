package service

import (
	"sync/atomic"
	"time"
)

// HealthService 存活與就緒狀態；就緒由 App 在所有 slot 載入且 http server 啟動後設定
type HealthService struct {
	live      atomic.Bool
	ready     atomic.Bool
	startedAt time.Time
}

func NewHealthService() *HealthService {
	s := &HealthService{startedAt: time.Now()}
	s.live.Store(true)
	return s
}

func (s *HealthService) SetReady(v bool) { s.ready.Store(v) }

func (s *HealthService) IsLive() bool { return s.live.Load() }

func (s *HealthService) IsReady() bool { return s.ready.Load() }

func (s *HealthService) Uptime() time.Duration {
	return time.Since(s.startedAt).Truncate(time.Second)
}
