package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/leengari/csvplot/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	require.Equal(t, config.DefaultOut, cfg.Out)
	require.Equal(t, config.DefaultDPI, cfg.DPI)
	require.Equal(t, config.DefaultListen, cfg.Listen)
	require.Equal(t, config.DefaultPreviewRows, cfg.PreviewRows)
	require.Empty(t, cfg.SeqURL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CSVPLOT_DPI", "96")
	t.Setenv("CSVPLOT_LISTEN", "127.0.0.1:9000")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	require.Equal(t, 96, cfg.DPI)
	require.Equal(t, "127.0.0.1:9000", cfg.Listen)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CSVPLOT_OUT", "env.png")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", config.DefaultOut, "")
	require.NoError(t, flags.Set("out", "flag.png"))

	cfg, err := config.Load(flags)
	require.NoError(t, err)
	require.Equal(t, "flag.png", cfg.Out)
}

func TestLoad_UnchangedFlagYieldsDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", config.DefaultOut, "")

	cfg, err := config.Load(flags)
	require.NoError(t, err)
	require.Equal(t, config.DefaultOut, cfg.Out)
}
