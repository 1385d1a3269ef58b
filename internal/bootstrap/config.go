package bootstrap

import (
	"github.com/spf13/viper"

	"goban/internal/domain/board"
)

type Config struct {
	BoardSize    int  `mapstructure:"BOARD_SIZE"`
	HistoryLimit int  `mapstructure:"HISTORY_LIMIT"` // 0 keeps every snapshot
	DebugLog     bool `mapstructure:"DEBUG_LOG"`
}

// Default returns the configuration used when no config file is present:
// a standard 9×9 board with unlimited history.
func Default() *Config {
	return &Config{BoardSize: board.DefaultSize}
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetDefault("BOARD_SIZE", board.DefaultSize)
	viper.SetDefault("HISTORY_LIMIT", 0)
	viper.SetDefault("DEBUG_LOG", false)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
