package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
)

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		v.SetDefault("chain", "eth")
		v.SetDefault("format", "text")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "eth", cfg.Chain)
		assert.Equal(t, config.FormatText, cfg.Format)
		assert.Zero(t, cfg.Threads)
		assert.Zero(t, cfg.Timeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("explicit values", func(t *testing.T) {
		v := viper.New()
		v.Set("chain", "base")
		v.Set("format", "JSON")
		v.Set("threads", 8)
		v.Set("timeout", "90s")
		v.Set("params", true)
		v.Set("explorer", "https://example.org")
		v.Set("deployments", "chains.toml")
		v.Set("strict_checksum", true)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "base", cfg.Chain)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.Equal(t, 8, cfg.Threads)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.True(t, cfg.Params)
		assert.Equal(t, "https://example.org", cfg.Explorer)
		assert.Equal(t, "chains.toml", cfg.DeploymentsFile)
		assert.True(t, cfg.StrictChecksum)
	})

	tests := []struct {
		name string
		set  map[string]any
	}{
		{name: "unknown format", set: map[string]any{"format": "xml"}},
		{name: "quiet and params", set: map[string]any{"format": "text", "quiet": true, "params": true}},
		{name: "negative threads", set: map[string]any{"format": "text", "threads": -1}},
		{name: "negative timeout", set: map[string]any{"format": "text", "timeout": "-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := Provider(v)
			assert.Error(t, err)
		})
	}
}

func TestSetupViper(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().IntP("threads", "n", 0, "")
		cmd.Flags().Bool("non-interactive", false, "")
		cmd.Flags().String("chain", "eth", "")
		return cmd
	}

	t.Run("environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SAFEVANITY_THREADS", "3")
		t.Setenv("SAFEVANITY_NON_INTERACTIVE", "true")

		v, err := SetupViper(newCmd())
		require.NoError(t, err)

		assert.Equal(t, 3, v.GetInt("threads"))
		assert.True(t, v.GetBool("non_interactive"))
		assert.Equal(t, "eth", v.GetString("chain"))
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SAFEVANITY_CHAIN", "gno")

		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("chain", "base"))

		v, err := SetupViper(cmd)
		require.NoError(t, err)
		assert.Equal(t, "base", v.GetString("chain"))
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "safevanity.toml"), []byte("chain = \"arb1\"\nthreads = 2\n"), 0o644))

		v, err := SetupViper(newCmd())
		require.NoError(t, err)

		assert.Equal(t, "arb1", v.GetString("chain"))
		assert.Equal(t, 2, v.GetInt("threads"))
		assert.Equal(t, "safevanity.toml", filepath.Base(v.ConfigFileUsed()))
	})

	t.Run("invalid config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("chain = "), 0o644))
		t.Chdir(dir)
		t.Setenv("SAFEVANITY_CONFIG", path)

		_, err := SetupViper(newCmd())
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SAFEVANITY_TEST_DOTENV=from-file\n"), 0o644))
	t.Setenv("SAFEVANITY_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SAFEVANITY_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-file", os.Getenv("SAFEVANITY_TEST_DOTENV"))

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("SAFEVANITY_TEST_DOTENV", "from-env")
		require.NoError(t, LoadDotEnv(dir))
		assert.Equal(t, "from-env", os.Getenv("SAFEVANITY_TEST_DOTENV"))
	})
}
