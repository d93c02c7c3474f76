package config

// Storage 決定 slot 的後端與壓縮方式
type Storage struct {
	// memory / sqlite / redis / mongo
	Driver string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
	// none / zstd / brotli
	Compression string `mapstructure:"COMPRESSION" json:"compression" yaml:"compression"`
	// 小於此大小（bytes）的值不壓縮
	CompressMinSize int `mapstructure:"COMPRESS_MIN_SIZE" json:"compressMinSize" yaml:"compressMinSize"`
	// slot key 前綴（redis / mongo 共用一個實例時區分環境）
	KeyPrefix string `mapstructure:"KEY_PREFIX" json:"keyPrefix" yaml:"keyPrefix"`
}
