// Package logging 建立服務共用的 zap logger。
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"intro_web/pkg/config"
)

// New 依設定建立 logger。正式環境輸出 JSON，開發環境輸出彩色的 console 格式。
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	var zcfg zap.Config
	if cfg.Production() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = level

	return zcfg.Build()
}
