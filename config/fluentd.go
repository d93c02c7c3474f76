package config

// Fluentd request/response/audit 紀錄送往 fluentd；關閉時用 no-op client
type Fluentd struct {
	Enabled   bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host      string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port      int    `mapstructure:"PORT" json:"port" yaml:"port"`
	TagPrefix string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	// 毫秒
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	// 寫入失敗時最多保留的未送出筆數，0 用 fluent-logger 預設
	BufferLimit int `mapstructure:"BUFFER_LIMIT" json:"bufferLimit" yaml:"bufferLimit"`
}
