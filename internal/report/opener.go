package report

import (
	"fmt"
	"os/exec"
	"runtime"
)

type platformOpener struct{}

// Open launches the platform file browser on dir. The browser detaches; its
// exit status is only checked for launch failure, not browsing outcome.
func (platformOpener) Open(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch file browser: %w", err)
	}
	// explorer.exe in particular reports nonsense exit codes; reap the
	// process without judging it.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
