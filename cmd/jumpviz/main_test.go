package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/jumpviz/internal/config"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	dataDir, configFile, logLevel, preset = "", "", "", ""
	withVelocities = false

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&dataDir, "data", config.DefaultDataDir, "")
	cmd.Flags().StringVar(&configFile, "config", "", "")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "")
	cmd.Flags().StringVar(&preset, "preset", "", "")
	cmd.Flags().BoolVar(&withVelocities, "velocities", false, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(testCommand(t))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDataDir, cfg.DataDir)
	assert.Equal(t, config.DefaultRender(), cfg.Render)
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumpviz.yaml")
	file := config.DefaultConfig()
	file.DataDir = "from-file"
	file.LogLevel = "debug"
	file.Render.VelocityScale = 0.3
	require.NoError(t, config.Save(path, file))

	cmd := testCommand(t, "--config", path, "--data", "from-flag", "--velocities")
	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 0.3, cfg.Render.VelocityScale, 1e-12)
	assert.True(t, cfg.Render.WithVelocities)
}

func TestResolveConfig_Preset(t *testing.T) {
	cfg, err := resolveConfig(testCommand(t, "--preset", "drift"))
	require.NoError(t, err)
	assert.Equal(t, config.TimerChestX, cfg.Render.Timer)

	_, err = resolveConfig(testCommand(t, "--preset", "nope"))
	assert.ErrorContains(t, err, "unknown preset")
}

func TestResolveConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: [\n"), 0644))

	_, err := resolveConfig(testCommand(t, "--config", path))
	assert.ErrorContains(t, err, "failed to load config")
}

func TestParseFrameIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-1", -1, true},
		{"3abc", 0, false},
		{"3.5", 0, false},
		{" 3", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := parseFrameIndex(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.ErrorContains(t, err, "invalid frame index", tt.in)
		}
	}
}
