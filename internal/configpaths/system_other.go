//go:build !unix && !windows

package configpaths

func SystemConfigDir() string { return "" }
