package config

type Store struct {
	// slot 內容損毀時改用 fixture
	FallbackOnCorrupt bool `mapstructure:"FALLBACK_ON_CORRUPT" json:"fallbackOnCorrupt" yaml:"fallbackOnCorrupt"`
	// 建立投訴/請假時檢查 employeeId 是否存在
	EnforceReferences bool `mapstructure:"ENFORCE_REFERENCES" json:"enforceReferences" yaml:"enforceReferences"`
	// 定期從後端重新載入 slot 的 cron spec（含秒），空字串代表停用
	ResyncSpec string `mapstructure:"RESYNC_SPEC" json:"resyncSpec" yaml:"resyncSpec"`
}
