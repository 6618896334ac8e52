package utils

import (
	"fmt"
	"os/exec"
)

// OpenURL opens the given URL in the default browser.
func OpenURL(u string) error {
	if cmd, err := exec.LookPath("xdg-open"); err == nil {
		return exec.Command(cmd, u).Start()
	}
	if cmd, err := exec.LookPath("open"); err == nil {
		return exec.Command(cmd, u).Start()
	}
	return fmt.Errorf("no browser opener found for %s", u)
}
