package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safevanity/internal/cli/render"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// NewAddressCmd creates the address command
func NewAddressCmd() *cobra.Command {
	var (
		safe  safeFlags
		nonce string
	)

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Compute the address of a Safe for a salt nonce",
		Long: `Compute the address a Safe with the given owners and threshold is deployed at
for a known salt nonce, together with the deployment calldata.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			saltNonce, err := parseSaltNonce(nonce)
			if err != nil {
				return err
			}

			params, err := safe.params(app.Config.StrictChecksum)
			if err != nil {
				return err
			}

			result, err := app.ComputeSafeAddress.Run(cmd.Context(), usecase.ComputeSafeAddressParams{
				Safe:      params,
				SaltNonce: saltNonce,
			})
			if err != nil {
				return err
			}

			return render.NewSafeRenderer(cmd.OutOrStdout(), app.Config).Render(&result.SafeDeployment)
		},
	}

	safe.register(cmd.Flags())
	cmd.Flags().StringVar(&nonce, "nonce", "0", "Salt nonce, decimal or 0x prefixed hex")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
