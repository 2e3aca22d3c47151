package video

import (
	"os"
	"path/filepath"
	"strings"
)

// mergeableExtensions lists the container formats the ffmpeg concat demuxer
// handles well enough to merge blindly.
var mergeableExtensions = []string{
	".mp4", ".mov", ".mkv", ".avi", ".webm", ".m4v", ".ts", ".mts", ".m2ts", ".3gp",
}

// IsVideoFile reports whether path denotes a regular file with a known video
// container extension. Directories, symlinks to directories, special files
// and nonexistent paths all return false; it never errors.
func IsVideoFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path)) // handle cases where extension is upper case
	for _, v := range mergeableExtensions {
		if v == ext {
			return true
		}
	}
	return false
}
