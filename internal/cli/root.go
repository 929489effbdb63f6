// Package cli provides the command-line interface for FARBS.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Frewacom/FARBS-Firefox/internal/version"
)

var (
	// Global verbose flag
	flagVerbose bool

	// Logger shared by all commands, configured in PersistentPreRun
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "farbs",
		Short: "pywal-driven theming engine for Firefox",
		Long: `FARBS keeps Firefox in sync with your pywal colours. It talks to the pywal
native helper over native messaging, derives a full colorscheme bundle
(browser chrome theme, extension CSS variables, DuckDuckGo theme and a
Dark Reader scheme) from every palette the helper pushes, and caches each
derived scheme under a stable content hash.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if flagVerbose {
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "farbs",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}
