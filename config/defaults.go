package config

import "github.com/spf13/viper"

// SetDefaults 設定未指定時的預設值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP__ENV", "development")
	v.SetDefault("APP__PORT", 3000)
	v.SetDefault("APP__NAME", "hrdesk")
	v.SetDefault("APP__VERSION", "1.0.0")
	v.SetDefault("APP__SECRET_KEY", "change-me")
	v.SetDefault("APP__LOCALE", "en")
	v.SetDefault("LOG__LEVEL", "info")
	v.SetDefault("SQLITE__PATH", "hrdesk.db")
	v.SetDefault("MONGODB__DATABASE", "hrdesk")
	v.SetDefault("REDIS__PORT", 6379)
	v.SetDefault("STORAGE__DRIVER", "sqlite")
	v.SetDefault("STORAGE__COMPRESSION", "none")
	v.SetDefault("STORAGE__COMPRESS_MIN_SIZE", 1024)
	v.SetDefault("STORE__FALLBACK_ON_CORRUPT", true)
	v.SetDefault("STORE__RESYNC_SPEC", "")
	v.SetDefault("AUTH__ENABLED", true)
	v.SetDefault("AUTH__TOKEN_TTL", 86400)
	v.SetDefault("ADMIN__EMAIL_DOMAIN", "gtech.com")
	v.SetDefault("DASHBOARD__REFERENCE_DATE", "2026-01-06")
	v.SetDefault("FLUENTD__TAG_PREFIX", "hrdesk")
}
