package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/internal/batch"
	"github.com/idlab-discover/uom-cli/internal/catalog"
	"github.com/idlab-discover/uom-cli/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uom",
	Short: "Convert quantities between units of measure",
	Long:  longDescription,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		_, err := configureLogging(cmd.ErrOrStderr())
		return err
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var (
	cfgFile  string
	logLevel string
	version  = "devel"
)

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.uom-cli.yaml or ./config/defaults.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: quiet|standard|debug")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(convertCmd, unitsCmd, kindsCmd, batchCmd, pickCmd)
}

func initConfig() {
	// Environment variables override config files: convert.precision -> UOM_CONVERT_PRECISION
	viper.SetEnvPrefix("UOM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	var err error
	notFound := &viper.ConfigFileNotFoundError{}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		err = viper.ReadInConfig()
	} else {
		home, herr := os.UserHomeDir()
		cobra.CheckErr(herr)

		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		viper.AddConfigPath("./config")

		// Try .uom-cli first
		viper.SetConfigName(".uom-cli")
		err = viper.ReadInConfig()

		// If not found, try defaults.yaml
		if err != nil && errors.As(err, notFound) {
			viper.SetConfigName("defaults")
			err = viper.ReadInConfig()
		}
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil:
		// The config file is optional
	default:
		fmt.Fprintln(os.Stderr, ui.Dim.Render("Using config file: ")+ui.Secondary.Render(viper.ConfigFileUsed()))
	}
}

// configureLogging resolves the effective log level and wires package logging to w
// for debug runs.
func configureLogging(w io.Writer) (string, error) {
	level := strings.ToLower(strings.TrimSpace(viper.GetString("log-level")))
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		// ok
	default:
		return "", apperr.Userf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}

	var sink io.Writer
	if level == "debug" {
		sink = w
	}
	catalog.SetLogger(sink)
	batch.SetLogger(sink)
	return level, nil
}

// quiet reports whether the styled output should be suppressed.
func quiet() bool {
	return strings.EqualFold(strings.TrimSpace(viper.GetString("log-level")), "quiet")
}

const longDescription = "Convert quantities between units of measure. Lengths, masses, times, temperatures, velocities, forces, pressures, bearings and accelerations, each with its own set of units."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderBanner(ui.BannerASCII) + "\n" + longDescription
}
