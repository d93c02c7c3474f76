package config

type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// 連線池大小，0 用 go-redis 預設
	PoolSize int `mapstructure:"POOL_SIZE" json:"poolSize" yaml:"poolSize"`
	// 連線與 ping 逾時（秒）
	DialTimeout int64 `mapstructure:"DIAL_TIMEOUT" json:"dialTimeout" yaml:"dialTimeout"`
}
