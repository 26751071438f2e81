package report

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenViewer opens the generated document with the platform default
// viewer. The viewer process is not waited on.
func OpenViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s in viewer: %w", path, err)
	}
	return nil
}
