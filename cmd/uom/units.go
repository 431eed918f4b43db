package cmd

import (
	"fmt"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	unitsKind   string
	unitsBrowse bool
)

var unitsCmd = &cobra.Command{
	Use:   "units [kind]",
	Short: "List the units of one or all quantity kinds",
	Long:  "List units with their abbreviation and conversion to the base unit of the kind. Use --browse for an interactive, filterable list.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	kinds := catalog.Registry()

	name := viper.GetString("units.kind")
	if len(args) == 1 {
		name = args[0]
	}
	if strings.TrimSpace(name) != "" {
		k, ok := catalog.Lookup(kinds, name)
		if !ok {
			return apperr.Userf("unknown quantity kind %q (known: %s)", name, strings.Join(catalog.Names(kinds), ", "))
		}
		kinds = []catalog.Kind{k}
	}

	if !viper.GetBool("units.browse") {
		ui.NewConvertUI(cmd.OutOrStdout(), quiet()).PrintUnits(catalog.Tables(kinds))
		return nil
	}

	sel, err := ui.RunUnitBrowser(catalog.Tables(kinds))
	if err != nil {
		return err
	}
	return printUnitInBase(cmd, kinds, sel)
}

// printUnitInBase shows one of the selected unit expressed in the kind's base unit.
func printUnitInBase(cmd *cobra.Command, kinds []catalog.Kind, sel ui.BrowsedUnit) error {
	k, ok := catalog.Lookup(kinds, sel.Kind)
	if !ok {
		return fmt.Errorf("browser returned unknown kind %q", sel.Kind)
	}
	res, err := k.Convert(1, sel.Unit.Abbr, k.Base().Abbr)
	if err != nil {
		return err
	}
	ui.NewConvertUI(cmd.OutOrStdout(), false).PrintConversion(res.View(-1))
	return nil
}

func init() {
	unitsCmd.Flags().StringVarP(&unitsKind, "kind", "k", "", "Only list units of this kind")
	unitsCmd.Flags().BoolVar(&unitsBrowse, "browse", false, "Browse units interactively")

	viper.BindPFlag("units.kind", unitsCmd.Flags().Lookup("kind"))
	viper.BindPFlag("units.browse", unitsCmd.Flags().Lookup("browse"))
}
