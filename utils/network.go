package utils

import (
	"path/filepath"
	"strings"
)

// Common network mount prefixes per platform, plus substrings that betray a
// network filesystem somewhere in the resolved path.
var (
	networkPrefixes   = []string{"/mnt/", "/media/", "/Volumes/"}
	networkIndicators = []string{"nfs", "cifs", "smb", "webdav"}
)

// IsNetworkDrive detects if a path is on a network-mounted drive. Merging
// over the network works but is slow enough to deserve a warning.
func IsNetworkDrive(path string) bool {
	// Windows UNC paths, checked before absolutising mangles them.
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	for _, indicator := range networkIndicators {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}
	return false
}
