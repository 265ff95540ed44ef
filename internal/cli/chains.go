package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safevanity/internal/cli/render"
	"github.com/trebuchet-org/safevanity/internal/usecase"
)

// NewChainsCmd creates the chains command
func NewChainsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List chains with known Safe deployments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListChains.Run(cmd.Context(), usecase.ListChainsParams{IncludeUnsupported: all})
			if err != nil {
				return err
			}

			return render.NewChainsRenderer(cmd.OutOrStdout(), app.Config.Format).Render(result)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include chains Safe addresses cannot be searched for")

	return cmd
}
