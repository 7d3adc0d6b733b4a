package foamcase

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RunTool invokes an OpenFOAM binary by name with the case root as
// working directory, blocking until it exits. Combined output goes to
// log.<name> in the case root, the usual OpenFOAM convention. There is
// no timeout or cancellation: a hung tool blocks the caller.
func (c *Case) RunTool(name string, args ...string) error {
	logPath := filepath.Join(c.Root, "log."+name)
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", logPath, err)
	}
	defer logFile.Close()

	cmd := exec.Command(name, args...)
	cmd.Dir = c.Root
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed (see %s): %w", name, logPath, err)
	}
	return nil
}
