package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Frewacom/FARBS-Firefox/internal/version"
	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintf(cmd.OutOrStdout(), "protocol: %s (minimum helper: %s)\n",
			protocol.ProtocolVersion, protocol.MinHelperVersion)
	},
}
