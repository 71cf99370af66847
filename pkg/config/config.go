package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Intro  IntroConfig
	Images ImagesConfig
	Log    LogConfig
}

// IntroConfig 是路由示範服務的設定
type IntroConfig struct {
	Address string
}

// ImagesConfig 是圖片服務的設定
type ImagesConfig struct {
	Address string
	Dir     string
}

type LogConfig struct {
	Level string
	Mode  string // development 或 production
}

// Production 回報是否以正式環境模式執行
func (c LogConfig) Production() bool {
	return strings.EqualFold(c.Mode, "production")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("intro.address", "127.0.0.1:8000")
	v.SetDefault("images.address", "0.0.0.0:8000")
	v.SetDefault("images.dir", "./img")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.mode", "development")
}

// Load 依序讀取 .env、./pkg/config/config.yaml 與環境變數，設定檔不存在時使用預設值
func Load() (*Config, error) {
	// .env 不存在時直接使用系統環境變數
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return unmarshal(v)
}

// LoadFrom 讀取指定的設定檔
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
