package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type ApiConf struct {
	Port string `mapstructure:"port"`
}

type DbConf struct {
	Path string `mapstructure:"path"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
}

type ClientConf struct {
	BaseURL string `mapstructure:"base_url"`
	UserID  string `mapstructure:"user_id"`
}

type Config struct {
	Api    ApiConf    `mapstructure:"api"`
	Db     DbConf     `mapstructure:"db"`
	Log    LogConf    `mapstructure:"log"`
	Client ClientConf `mapstructure:"client"`
}

// UnmarshalConfig 从toml文件加载配置
func UnmarshalConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("api.port", ":8001")
	v.SetDefault("db.path", "airdrop_tracker.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "prod")
	v.SetDefault("client.base_url", "http://127.0.0.1:8001")
	v.SetDefault("client.user_id", "default_user")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read config file")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal config")
	}
	return &c, nil
}
