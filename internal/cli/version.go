package cli

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set during build time
var Version = "dev"

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of safevanity",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info, _ := debug.ReadBuildInfo()
			writeVersion(cmd.OutOrStdout(), info)
		},
	}
}

// writeVersion prints the version, falling back to the module version for
// binaries built with go install, and the VCS revision when known.
func writeVersion(out io.Writer, info *debug.BuildInfo) {
	version := Version
	if version == "dev" && info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	fmt.Fprintf(out, "safevanity version %s\n", version)

	if info == nil {
		return
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			fmt.Fprintf(out, "commit: %s\n", setting.Value)
		}
	}
	fmt.Fprintf(out, "go:     %s\n", info.GoVersion)
}
