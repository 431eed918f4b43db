package cmd

import (
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pickPrecision int

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a kind, units and a value interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := catalog.Registry()
		precision := viper.GetInt("pick.precision")

		view, err := ui.RunConversionForm(catalog.Tables(kinds), func(kind string, v float64, from, to string) (ui.ConversionView, error) {
			res, err := catalog.Convert(kinds, catalog.Request{Kind: kind, Value: v, From: from, To: to})
			if err != nil {
				return ui.ConversionView{}, err
			}
			return res.View(precision), nil
		})
		if err != nil {
			return err
		}

		ui.NewConvertUI(cmd.OutOrStdout(), quiet()).PrintConversion(view)
		return nil
	},
}

func init() {
	pickCmd.Flags().IntVarP(&pickPrecision, "precision", "p", -1, "Significant digits in the output (-1 for the shortest exact form)")
	viper.BindPFlag("pick.precision", pickCmd.Flags().Lookup("precision"))
}
