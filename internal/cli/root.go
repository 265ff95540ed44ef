package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safevanity/internal/app"
	"github.com/trebuchet-org/safevanity/internal/cli/render"
	"github.com/trebuchet-org/safevanity/internal/config"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command, which searches for a vanity Safe
func NewRootCmd() *cobra.Command {
	var (
		safe   safeFlags
		prefix string
	)

	rootCmd := &cobra.Command{
		Use:   "safevanity",
		Short: "Generate vanity addresses for Safe deployments",
		Long: `Search for a SafeProxyFactory salt nonce that deploys a Safe with the given
owners and threshold at an address starting with a hex prefix.

The search runs on every CPU until a match is found, the timeout expires or it
is interrupted. The result is the createProxyWithNonce calldata that deploys
the Safe at the vanity address.`,
		Example: `  safevanity --owner 0xBF51A8D5ec360F69f9d852Bad1df81585a0b4de2 --prefix 0x5afe
  safevanity -o 0xBF51...4de2 -o 0x84B2...8206 -t 2 -p 5afe --chain base --params`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v, err := config.SetupViper(cmd)
			if err != nil {
				return err
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params, err := safe.params(app.Config.StrictChecksum)
			if err != nil {
				return err
			}

			result, err := app.SearchVanitySafe.Run(cmd.Context(), usecase.SearchVanitySafeParams{
				Safe:   params,
				Prefix: prefix,
			})
			if err != nil {
				return err
			}

			return render.NewSafeRenderer(cmd.OutOrStdout(), app.Config).RenderSearch(result)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.StringP("chain", "c", "eth", "Chain short name or ID")
	flags.String("deployments", "", "TOML file with additional Safe deployments and chains")
	flags.String("explorer", "", "Override for the block explorer URL")
	flags.String("format", "text", "Output format (text, json, yaml)")
	flags.BoolP("quiet", "q", false, "Only output the transaction calldata")
	flags.BoolP("params", "P", false, "Output the createProxyWithNonce parameters for a block explorer")
	flags.Bool("strict-checksum", false, "Reject mixed-case addresses with an invalid EIP-55 checksum")

	// Search flags
	safe.register(rootCmd.Flags())
	rootCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Hex prefix of the vanity address")
	rootCmd.Flags().IntP("threads", "n", 0, "Number of search workers (0 uses every CPU)")
	rootCmd.Flags().Duration("timeout", 0, "Give up the search after this duration (0 searches until found)")
	_ = rootCmd.MarkFlagRequired("owner")
	_ = rootCmd.MarkFlagRequired("prefix")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})

	addressCmd := NewAddressCmd()
	addressCmd.GroupID = "main"
	rootCmd.AddCommand(addressCmd)

	decodeCmd := NewDecodeCmd()
	decodeCmd.GroupID = "main"
	rootCmd.AddCommand(decodeCmd)

	chainsCmd := NewChainsCmd()
	chainsCmd.GroupID = "main"
	rootCmd.AddCommand(chainsCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
