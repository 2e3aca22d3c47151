package video

import (
	"fmt"
	"os"
	"strings"
)

// WriteConcatManifest creates a uniquely-named file list in dir for the
// ffmpeg concat demuxer: one "file '<path>'" line per input, in order.
// The manifest lives next to the inputs so ffmpeg resolves relative paths
// unambiguously. The caller owns the returned file and must delete it.
func WriteConcatManifest(paths []string, dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, "ffconcat-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create concat manifest: %w", err)
	}

	for _, p := range paths {
		if _, err := fmt.Fprintf(tmp, "file '%s'\n", escapeConcatPath(p)); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return "", fmt.Errorf("failed to write concat manifest: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close concat manifest: %w", err)
	}
	return tmp.Name(), nil
}

// escapeConcatPath makes a path safe inside the single-quoted concat line.
// The demuxer has no in-quote escaping, so a literal ' becomes '\''
// (close quote, escaped quote, reopen quote).
func escapeConcatPath(p string) string {
	return strings.ReplaceAll(p, `'`, `'\''`)
}
