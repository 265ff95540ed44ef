package config

import (
	"time"
)

// OutputFormat selects how results are written to stdout.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Execution settings
	Debug          bool
	NonInteractive bool
	Threads        int           // 0 uses one worker per CPU
	Timeout        time.Duration // 0 searches until a match is found
	StrictChecksum bool          // Reject mixed-case addresses with a bad EIP-55 checksum

	// Context settings
	Chain           string // Short name or chain ID
	DeploymentsFile string // Optional TOML file with extra chains

	// Output settings
	Format   OutputFormat
	Quiet    bool   // Only print the calldata
	Params   bool   // Only print createProxyWithNonce parameters
	Explorer string // Explorer URL override for parameter links

	// Config source tracking
	ConfigFile string // Config file read by viper, empty if none
}
