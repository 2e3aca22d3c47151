package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// CheckFFmpeg verifies that ffmpeg is available in PATH. The merge pipeline
// never probes inputs, so ffmpeg is the only external tool required.
func CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH. %s", FFmpegInstallHint())
	}
	return nil
}

// FFmpegInstallHint returns platform-specific installation instructions
func FFmpegInstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
