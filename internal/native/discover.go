package native

import (
	"fmt"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// helperProcessNames are executable names that identify a running pywal
// helper daemon.
var helperProcessNames = []string{"pywalfox", "pywal"}

// HelperProcess describes a running helper found in the process table.
type HelperProcess struct {
	Pid        int
	Executable string
}

// FindHelperProcess scans the process table for a running pywal helper.
// Used by diagnostics to distinguish "helper not installed" from "helper
// installed but not reachable".
func FindHelperProcess() (HelperProcess, bool, error) {
	procs, err := ps.Processes()
	if err != nil {
		return HelperProcess{}, false, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, proc := range procs {
		name := strings.ToLower(proc.Executable())
		for _, candidate := range helperProcessNames {
			if strings.Contains(name, candidate) {
				return HelperProcess{Pid: proc.Pid(), Executable: proc.Executable()}, true, nil
			}
		}
	}

	return HelperProcess{}, false, nil
}
