package config

type Auth struct {
	Enabled bool `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	// session token 有效時間（秒）
	TokenTTL int64 `mapstructure:"TOKEN_TTL" json:"tokenTTL" yaml:"tokenTTL"`
}

type Admin struct {
	// 建立後台帳號時 email 的網域
	EmailDomain string `mapstructure:"EMAIL_DOMAIN" json:"emailDomain" yaml:"emailDomain"`
}

type Dashboard struct {
	// 儀表板「今日」統計使用的日期（YYYY-MM-DD），空字串代表當天
	ReferenceDate string `mapstructure:"REFERENCE_DATE" json:"referenceDate" yaml:"referenceDate"`
}
