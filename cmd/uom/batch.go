package cmd

import (
	"strings"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/internal/batch"
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	batchInput  string
	batchOutput string
	batchFormat string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a file of conversions and write a report",
	Long: "Reads a YAML or JSON file with a list of conversions, runs each one and writes a report " +
		"with the result or error of every entry. Without --output the report is printed to stdout.",
	Example: "  uom batch -i conversions.yaml -o report.json",
	Args:    cobra.NoArgs,
	RunE:    runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(viper.GetString("batch.input"))
	if input == "" {
		return apperr.User("--input is required")
	}
	format := viper.GetString("batch.format")
	output := strings.TrimSpace(viper.GetString("batch.output"))

	reqs, err := batch.ReadRequests(input, format)
	if err != nil {
		return err
	}
	rep := batch.Run(catalog.Registry(), reqs, version)

	if output == "" {
		actual, err := batch.ResolveFormat(input, format)
		if err != nil {
			return err
		}
		if err := batch.Encode(cmd.OutOrStdout(), rep, actual); err != nil {
			return err
		}
	} else {
		if err := batch.WriteReport(rep, output, format); err != nil {
			return err
		}
		out := ui.NewConvertUI(cmd.OutOrStdout(), quiet())
		out.PrintBatch(rep.Summary())
	}

	if n := rep.Failed(); n > 0 {
		return apperr.Userf("%d of %d conversions failed", n, len(rep.Entries))
	}
	return nil
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Path to the conversions file (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Report path (stdout when empty)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "File format: yaml|json|auto")

	viper.BindPFlag("batch.input", batchCmd.Flags().Lookup("input"))
	viper.BindPFlag("batch.output", batchCmd.Flags().Lookup("output"))
	viper.BindPFlag("batch.format", batchCmd.Flags().Lookup("format"))
}
