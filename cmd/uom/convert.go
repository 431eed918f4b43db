package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	convertKind      string
	convertPrecision int
	convertPlain     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value from one unit to another",
	Long: "Convert a value between two units of the same quantity kind. Units may be given by abbreviation, " +
		"name or \"Name (Abbr)\", ignoring case. The kind is detected from the units unless --kind is set. " +
		"Use -- before negative values (uom convert -- -40 °C °F).",
	Example: "  uom convert 10 m ft\n  uom convert 1 g m/s² --kind acceleration\n  uom convert 98.6 Fahrenheit Celsius --plain",
	Args:    cobra.ExactArgs(3),
	RunE:    runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := parseMagnitude(args[0])
	if err != nil {
		return err
	}

	res, err := catalog.Convert(catalog.Registry(), catalog.Request{
		Kind:  viper.GetString("convert.kind"),
		Value: v,
		From:  args[1],
		To:    args[2],
	})
	if err != nil {
		return err
	}

	precision := viper.GetInt("convert.precision")
	if viper.GetBool("convert.plain") || quiet() {
		in, out := res.Format(precision)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", in, res.From.Abbr, out, res.To.Abbr)
		return nil
	}

	ui.NewConvertUI(cmd.OutOrStdout(), false).PrintConversion(res.View(precision))
	return nil
}

func parseMagnitude(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, apperr.Userf("%q is not a number", s)
	}
	return v, nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertKind, "kind", "k", "", "Quantity kind (e.g. length, temperature); detected from the units when empty")
	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p", -1, "Significant digits in the output (-1 for the shortest exact form)")
	convertCmd.Flags().BoolVar(&convertPlain, "plain", false, "Print a single plain line (no styling)")

	viper.BindPFlag("convert.kind", convertCmd.Flags().Lookup("kind"))
	viper.BindPFlag("convert.precision", convertCmd.Flags().Lookup("precision"))
	viper.BindPFlag("convert.plain", convertCmd.Flags().Lookup("plain"))
}
