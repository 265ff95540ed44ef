package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/safevanity/internal/domain/config"
)

const (
	// EnvPrefix prefixes every environment variable read by viper.
	EnvPrefix = "SAFEVANITY"
	// ConfigName is the base name of the optional config file.
	ConfigName = "safevanity"
)

// DotEnvFiles are loaded from the working directory, first file wins.
var DotEnvFiles = []string{".env.local", ".env"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	cfg := &config.RuntimeConfig{
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Threads:         v.GetInt("threads"),
		Timeout:         v.GetDuration("timeout"),
		Chain:           v.GetString("chain"),
		DeploymentsFile: v.GetString("deployments"),
		Format:          config.OutputFormat(strings.ToLower(v.GetString("format"))),
		Quiet:           v.GetBool("quiet"),
		Params:          v.GetBool("params"),
		Explorer:        v.GetString("explorer"),
		StrictChecksum:  v.GetBool("strict_checksum"),
		ConfigFile:      v.ConfigFileUsed(),
	}

	switch cfg.Format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("invalid output format %q, expected text, json or yaml", cfg.Format)
	}
	if cfg.Quiet && cfg.Params {
		return nil, errors.New("--quiet and --params cannot be used together")
	}
	if cfg.Threads < 0 {
		return nil, fmt.Errorf("invalid thread count %d", cfg.Threads)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s", cfg.Timeout)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) (*viper.Viper, error) {
	if err := LoadDotEnv("."); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set up config file
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigName))
		}
	}

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("chain", "eth")
	v.SetDefault("format", string(config.FormatText))
	v.SetDefault("threads", 0)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict_checksum", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	return v, nil
}

// LoadDotEnv loads the first existing file of DotEnvFiles in dir. Variables
// already present in the environment are not overridden.
func LoadDotEnv(dir string) error {
	for _, name := range DotEnvFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
