//go:build windows

package configpaths

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// SystemConfigDir returns %ProgramData%\keycycle for elevated processes, ""
// otherwise.
func SystemConfigDir() string {
	if !windows.GetCurrentProcessToken().IsElevated() {
		return ""
	}
	dir, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, 0)
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir)
}
