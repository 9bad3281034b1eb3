package intake

import (
	"fmt"
	"os/exec"
	"runtime"
)

// folderOpener is one platform strategy for revealing a directory in the
// host file browser.
type folderOpener struct {
	cmd  string
	args []string
}

func openerFor(goos string) (folderOpener, error) {
	switch goos {
	case "linux":
		return folderOpener{cmd: "xdg-open"}, nil
	case "darwin":
		return folderOpener{cmd: "open"}, nil
	case "windows":
		return folderOpener{cmd: "explorer"}, nil
	default:
		return folderOpener{}, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// OpenFolder asks the operating system to reveal dir in its file browser.
// Best effort: callers report failures and carry on.
func OpenFolder(dir string) error {
	op, err := openerFor(runtime.GOOS)
	if err != nil {
		return err
	}
	if err := exec.Command(op.cmd, append(op.args, dir)...).Start(); err != nil {
		return fmt.Errorf("could not open folder %s: %w", dir, err)
	}
	return nil
}
