package cmd

import (
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the quantity kinds and their base units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.NewConvertUI(cmd.OutOrStdout(), quiet()).PrintKinds(catalog.Tables(catalog.Registry()))
		return nil
	},
}
