package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/vertices/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	configFile, width, height, title, noOverlay = "", 0, 0, "", false

	cmd := &cobra.Command{Use: "sword"}
	cmd.Flags().StringVar(&configFile, "config", "", "")
	cmd.Flags().IntVar(&width, "width", 0, "")
	cmd.Flags().IntVar(&height, "height", 0, "")
	cmd.Flags().StringVar(&title, "title", "", "")
	cmd.Flags().BoolVar(&noOverlay, "no-overlay", false, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sword.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 1024\n  height: 768\n"), 0o644))

	cfg, err := loadConfig(testCommand(t, "--config", path, "--height", "600", "--no-overlay"))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, config.DefaultTitle, cfg.Window.Title)
	assert.False(t, cfg.Overlay)
}

func TestLoadConfigRejectsInvalidFlags(t *testing.T) {
	_, err := loadConfig(testCommand(t, "--width", "-5"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	assert.NoError(t, err)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
