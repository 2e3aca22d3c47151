package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hovanhoa/vidmerge/cmd"
	"github.com/hovanhoa/vidmerge/types"
	"github.com/hovanhoa/vidmerge/ui"
)

var Version = "dev"

type CLI struct {
	Merge    cmd.MergeCmd    `cmd:"" default:"withargs" help:"Merge all video files in a directory into one file"`
	Generate cmd.GenerateCmd `cmd:"" help:"Generate text, images or video via the AI API"`

	Version kong.VersionFlag `help:"Show version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vidmerge"),
		kong.Description("Merge all video files in a folder with ffmpeg, fast when possible."),
		kong.Vars{"version": Version},
	)

	err := ctx.Run(types.NewAppContext(Version))

	// Merge failures carry their own exit codes (1 = ffmpeg missing,
	// 2 = both merge strategies failed) so scripts can branch on them.
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(exitErr.Error()))
		os.Exit(exitErr.Code)
	}
	ctx.FatalIfErrorf(err)
}
