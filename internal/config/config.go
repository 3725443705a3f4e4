package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultOut is the headless output path when --out is not given. The
// dispatcher also uses it to detect whether --out was customized.
const DefaultOut = "plot.png"

const (
	DefaultDPI         = 144
	DefaultListen      = "127.0.0.1:8601"
	DefaultPreviewRows = 5
)

type Config struct {
	Out         string `mapstructure:"out"`
	DPI         int    `mapstructure:"dpi"`
	Listen      string `mapstructure:"listen"`
	PreviewRows int    `mapstructure:"preview_rows"`
	SeqURL      string `mapstructure:"seq_url"`
}

// Load resolves settings from defaults, an optional csvplot.yaml in the
// working directory, CSVPLOT_* environment variables, and any bound
// command-line flags, in increasing precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("out", DefaultOut)
	v.SetDefault("dpi", DefaultDPI)
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("preview_rows", DefaultPreviewRows)
	v.SetDefault("seq_url", "")

	v.SetConfigName("csvplot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CSVPLOT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
