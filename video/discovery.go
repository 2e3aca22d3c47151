package video

import (
	"os"
	"path/filepath"
	"strings"
)

// FindVideosInDir lists the mergeable video files directly inside directory
// (no recursion). Dotfiles are skipped unless includeHidden is set. Returned
// names are bare filenames in directory-listing order; callers sort.
func FindVideosInDir(directory string, includeHidden bool) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !IsVideoFile(filepath.Join(directory, name)) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}
