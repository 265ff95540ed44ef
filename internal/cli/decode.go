package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safevanity/internal/cli/render"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// NewDecodeCmd creates the decode command
func NewDecodeCmd() *cobra.Command {
	var (
		proxyFactory  addressValue
		proxyInitCode hexValue
	)

	cmd := &cobra.Command{
		Use:   "decode <calldata>",
		Short: "Decode createProxyWithNonce calldata",
		Long: `Decode SafeProxyFactory.createProxyWithNonce calldata into the Safe setup
parameters and derive the address it deploys on the selected chain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var calldata hexValue
			if err := calldata.Set(args[0]); err != nil {
				return err
			}
			if app.Config.StrictChecksum {
				if err := proxyFactory.checksum(); err != nil {
					return err
				}
			}

			result, err := app.DecodeCalldata.Run(cmd.Context(), usecase.DecodeCalldataParams{
				Calldata:      calldata.value,
				ProxyFactory:  proxyFactory.value,
				ProxyInitCode: proxyInitCode.value,
			})
			if err != nil {
				return err
			}

			return render.NewDecodeRenderer(cmd.OutOrStdout(), app.Config.Format).Render(result)
		},
	}

	cmd.Flags().Var(&proxyFactory, "proxy-factory", "Override for the SafeProxyFactory address")
	cmd.Flags().Var(&proxyInitCode, "proxy-init-code", "Override for the SafeProxy init code")

	return cmd
}
