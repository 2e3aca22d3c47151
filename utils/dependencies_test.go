package utils

import (
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestCheckFFmpeg(t *testing.T) {
	_, lookErr := exec.LookPath("ffmpeg")
	err := CheckFFmpeg()

	if lookErr == nil {
		if err != nil {
			t.Errorf("Expected check to pass when ffmpeg is available, got error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatal("Expected check to fail when ffmpeg is missing")
	}
	if !strings.Contains(err.Error(), "Install with:") && !strings.Contains(err.Error(), "Download from") {
		t.Errorf("Expected error message to contain installation instructions, got: %v", err)
	}
}

func TestFFmpegInstallHint(t *testing.T) {
	hint := FFmpegInstallHint()

	if hint == "" {
		t.Error("Installation instructions should not be empty")
	}

	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(hint, "brew install ffmpeg") {
			t.Errorf("Expected macOS instructions to mention brew, got: %s", hint)
		}
	case "linux":
		if !strings.Contains(hint, "apt-get install ffmpeg") {
			t.Errorf("Expected Linux instructions to mention apt-get, got: %s", hint)
		}
	case "windows":
		if !strings.Contains(hint, "ffmpeg.org") {
			t.Errorf("Expected Windows instructions to mention ffmpeg.org, got: %s", hint)
		}
	}
}
