package video

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// Strategy identifies which ffmpeg invocation produced the merged output.
type Strategy int

const (
	StrategyNone       Strategy = iota // no attempt succeeded
	StrategyStreamCopy                 // concat demuxer with -c copy
	StrategyReencode                   // concat demuxer with libx264/aac re-encode
)

func (s Strategy) String() string {
	switch s {
	case StrategyStreamCopy:
		return "stream copy"
	case StrategyReencode:
		return "re-encode"
	default:
		return "none"
	}
}

// MergeResult is the outcome of one merge run.
type MergeResult struct {
	OK         bool
	Strategy   Strategy
	Diagnostic string
}

// Runner executes an external command and reports its captured stderr.
// The merge logic only needs exit status and error output, so tests can
// substitute a fake instead of invoking ffmpeg.
type Runner interface {
	Run(name string, args ...string) (stderr string, err error)
}

type execRunner struct{}

// Run executes the command with stderr captured silently; stdout is
// discarded since ffmpeg writes its diagnostics to stderr.
func (execRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return stderrBuf.String(), err
}

// NewRunner returns the default exec-backed Runner.
func NewRunner() Runner {
	return execRunner{}
}

// MergeFiles merges the inputs listed in listFile into output using exactly
// two ordered strategies: a fast stream copy, then a re-encode fallback for
// inputs with incompatible codec parameters. An attempt only counts as a
// success when ffmpeg exits zero AND the output exists with nonzero size;
// some failure modes exit 0 while leaving an empty or partial file behind.
func MergeFiles(r Runner, listFile, output string) MergeResult {
	copyStderr, copyErr := r.Run("ffmpeg", concatArgs(listFile, output, "-c", "copy")...)
	if copyErr == nil && outputUsable(output) {
		return MergeResult{OK: true, Strategy: StrategyStreamCopy}
	}

	reencStderr, reencErr := r.Run("ffmpeg", concatArgs(listFile, output,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "20",
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "+faststart",
	)...)
	if reencErr == nil && outputUsable(output) {
		return MergeResult{OK: true, Strategy: StrategyReencode}
	}

	diag := strings.TrimSpace(copyStderr)
	if diag == "" {
		diag = strings.TrimSpace(reencStderr)
	}
	if diag == "" {
		diag = "Unknown error from ffmpeg"
	}
	return MergeResult{OK: false, Strategy: StrategyNone, Diagnostic: diag}
}

// concatArgs builds the shared concat-demuxer argument skeleton with the
// codec arguments spliced in before the output path.
func concatArgs(listFile, output string, codec ...string) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
	}
	args = append(args, codec...)
	return append(args, output)
}

// outputUsable reports whether the output file exists with nonzero size.
func outputUsable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}
