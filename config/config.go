package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	SQLite    SQLite          `mapstructure:"SQLITE" json:"sqlite" yaml:"sqlite"`
	Storage   Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Store     Store           `mapstructure:"STORE" json:"store" yaml:"store"`
	Auth      Auth            `mapstructure:"AUTH" json:"auth" yaml:"auth"`
	Admin     Admin           `mapstructure:"ADMIN" json:"admin" yaml:"admin"`
	Dashboard Dashboard       `mapstructure:"DASHBOARD" json:"dashboard" yaml:"dashboard"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
