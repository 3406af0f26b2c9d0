package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/benchtab/internal/logging"
)

var (
	cfgFile      string
	rowFormat    string
	labelWidth   int
	outputFormat string
	noColor      bool
	verbose      bool

	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "benchtab",
	Short: "Measure and tabulate the cost of shell commands",
	Long: `benchtab measures the CPU and wall-clock cost of shell commands and
renders the results as aligned tabular reports. The rehearse mode runs a
throwaway pass first so column alignment is always correct, whatever the
label lengths.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.benchtab/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rowFormat, "format", "", "row template (default is the built-in four-column format)")
	rootCmd.PersistentFlags().IntVar(&labelWidth, "width", 0, "label column width (0 = fit the widest label)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "plain", "output format: plain, table or json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".benchtab"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("benchtab")
	viper.AutomaticEnv()

	// Flags beat config; config beats built-in defaults
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("format") != "" && rowFormat == "" {
			rowFormat = viper.GetString("format")
		}
		if viper.GetInt("width") > 0 && labelWidth == 0 {
			labelWidth = viper.GetInt("width")
		}
		if viper.GetString("output") != "" && !rootCmd.PersistentFlags().Changed("output") {
			outputFormat = viper.GetString("output")
		}
		if viper.GetBool("no_color") {
			noColor = true
		}
	}

	color.NoColor = color.NoColor || noColor

	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	logger = logging.NewLogger(level, false)
}
