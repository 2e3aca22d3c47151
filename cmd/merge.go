package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hovanhoa/vidmerge/types"
	"github.com/hovanhoa/vidmerge/ui"
	"github.com/hovanhoa/vidmerge/utils"
	"github.com/hovanhoa/vidmerge/video"
)

type MergeCmd struct {
	Directory     string `arg:"" name:"directory" help:"Directory containing the videos to merge" type:"existingdir" default:"."`
	Output        string `help:"Output file name (e.g. merged.mp4). Defaults to merged_<timestamp>.mp4" short:"o"`
	IncludeHidden bool   `help:"Include hidden files (starting with a dot)"`

	// Test seams; the zero values select the real implementations.
	runner    video.Runner
	checkTool func() error
}

func (cmd *MergeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	checkTool := cmd.checkTool
	if checkTool == nil {
		checkTool = utils.CheckFFmpeg
	}
	if err := checkTool(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return &ExitError{Code: ExitToolMissing, Msg: "ffmpeg is not installed or not in PATH"}
	}

	dirAbs, err := filepath.Abs(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	if utils.IsNetworkDrive(dirAbs) {
		fmt.Println(ui.WarnStyle.Render("⚠️  Directory looks network-mounted, merging may be slow"))
	}

	names, err := video.FindVideosInDir(dirAbs, cmd.IncludeHidden)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cmd.Directory, err)
	}
	video.SortNatural(names)

	outputName := cmd.Output
	if outputName == "" {
		outputName = fmt.Sprintf("merged_%s.mp4", time.Now().Format("20060102_150405"))
	}
	outputPath := filepath.Join(dirAbs, outputName)
	if filepath.IsAbs(outputName) {
		outputPath = outputName
	}

	// Never merge a previous run's output into itself.
	inputs := make([]string, 0, len(names))
	for _, name := range names {
		if filepath.Join(dirAbs, name) == outputPath {
			continue
		}
		inputs = append(inputs, filepath.Join(dirAbs, name))
	}

	if len(inputs) < 2 {
		fmt.Println("Found fewer than 2 video files to merge. Nothing to do.")
		return nil
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Video Merger %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Merging %d files in order:", len(inputs))))
	for _, f := range inputs {
		fmt.Printf(" - %s\n", filepath.Base(f))
	}

	listFile, err := video.WriteConcatManifest(inputs, dirAbs)
	if err != nil {
		return err
	}
	// The manifest belongs to this run alone; remove it on every exit path.
	// A failed removal must not mask the merge outcome.
	defer func() {
		_ = os.Remove(listFile)
	}()

	runner := cmd.runner
	if runner == nil {
		runner = video.NewRunner()
	}

	result := video.MergeFiles(runner, listFile, outputPath)
	if !result.OK {
		if result.Diagnostic != "" {
			fmt.Fprintln(os.Stderr, result.Diagnostic)
		}
		return &ExitError{Code: ExitMergeFailed, Msg: "failed to merge videos"}
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Merged with %s.", result.Strategy)))
	fmt.Printf("Done: %s\n", outputPath)
	return nil
}
