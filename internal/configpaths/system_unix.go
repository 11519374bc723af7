//go:build unix

package configpaths

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// SystemConfigDir returns /etc/keycycle when running as root, "" otherwise.
func SystemConfigDir() string {
	if unix.Geteuid() == 0 {
		return filepath.Join("/", "etc", appDir)
	}
	return ""
}
