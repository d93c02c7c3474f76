package config

type SQLite struct {
	// 資料庫檔案路徑；":memory:" 代表記憶體資料庫
	Path string `mapstructure:"PATH" json:"path" yaml:"path"`
}
