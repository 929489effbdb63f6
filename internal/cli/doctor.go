package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Frewacom/FARBS-Firefox/internal/native"
	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the native helper installation",
	Long: `Check whether the pywal native helper is reachable: the helper executable on
PATH, the Firefox native-messaging manifest, and any running helper daemon.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	command := native.HelperCommand()

	fmt.Fprintf(out, "protocol version: %s (minimum helper: %s)\n", protocol.ProtocolVersion, protocol.MinHelperVersion)

	if path, err := exec.LookPath(command); err == nil {
		fmt.Fprintf(out, "helper executable: %s\n", path)
	} else {
		fmt.Fprintf(out, "helper executable: %q not found on PATH\n", command)
	}

	found := false
	for _, path := range manifestPaths() {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "native-messaging manifest: %s\n", path)
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(out, "native-messaging manifest: not found (run the helper's install step)")
	}

	proc, running, err := native.FindHelperProcess()
	switch {
	case err != nil:
		fmt.Fprintf(out, "helper process: could not inspect the process table: %v\n", err)
	case running:
		fmt.Fprintf(out, "helper process: %s running (pid %d)\n", proc.Executable, proc.Pid)
	default:
		fmt.Fprintln(out, "helper process: not running")
	}

	return nil
}

// manifestPaths lists where Firefox looks for the helper's native-messaging
// manifest on this platform.
func manifestPaths() []string {
	paths := []string{
		"/usr/lib/mozilla/native-messaging-hosts/pywalfox.json",
		"/usr/lib64/mozilla/native-messaging-hosts/pywalfox.json",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append([]string{
			filepath.Join(home, ".mozilla", "native-messaging-hosts", "pywalfox.json"),
			filepath.Join(home, ".librewolf", "native-messaging-hosts", "pywalfox.json"),
		}, paths...)
	}
	return paths
}
