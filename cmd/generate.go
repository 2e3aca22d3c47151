package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hovanhoa/vidmerge/genai"
	"github.com/hovanhoa/vidmerge/ui"
	"github.com/hovanhoa/vidmerge/utils"
)

type GenerateCmd struct {
	Text  GenTextCmd  `cmd:"" help:"Generate text with a chat model"`
	Image GenImageCmd `cmd:"" help:"Generate images and save them as PNG files"`
	Video GenVideoCmd `cmd:"" help:"Generate a video and download it when ready"`
}

// apiOptions are the flags shared by every generate subcommand.
type apiOptions struct {
	BaseURL  string `help:"AI API base URL" env:"AI_API_BASE" default:"https://api.thucchien.ai"`
	APIKey   string `help:"AI API key" env:"AI_API_KEY" required:""`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info"`
}

func (o *apiOptions) client() *genai.Client {
	logger := utils.NewLogger(o.LogLevel)
	logger.Info("using AI API", "base_url", o.BaseURL, "api_key", utils.SanitizeKey(o.APIKey))
	return genai.NewClient(o.BaseURL, o.APIKey, logger)
}

type GenTextCmd struct {
	apiOptions
	Prompt      string  `arg:"" help:"Prompt to send"`
	Model       string  `help:"Chat model" default:"gemini-2.5-flash"`
	Temperature float64 `help:"Sampling temperature" default:"0.7"`
}

func (cmd *GenTextCmd) Run() error {
	content, err := cmd.client().ChatCompletion(context.Background(), cmd.Model, cmd.Prompt, cmd.Temperature)
	if err != nil {
		return fmt.Errorf("text generation failed: %w", err)
	}
	fmt.Println(content)
	return nil
}

type GenImageCmd struct {
	apiOptions
	Prompt string `arg:"" help:"Prompt describing the images"`
	Model  string `help:"Image model" default:"imagen-4"`
	Count  int    `help:"Number of images to generate" short:"n" default:"1"`
	OutDir string `help:"Directory to save images into" type:"existingdir" default:"."`
}

func (cmd *GenImageCmd) Run() error {
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("🎨 Generating %d image(s)...", cmd.Count)))

	paths, err := cmd.client().GenerateImages(context.Background(), cmd.Model, cmd.Prompt, cmd.Count, cmd.OutDir)
	if err != nil {
		return fmt.Errorf("image generation failed: %w", err)
	}
	for _, p := range paths {
		fmt.Printf("Image saved to %s\n", p)
	}
	return nil
}

type GenVideoCmd struct {
	// The video surface lives under the Gemini pass-through base, not the
	// OpenAI-compatible one, hence its own base URL flag.
	BaseURL  string `help:"Gemini pass-through base URL" env:"AI_VIDEO_API_BASE" default:"https://api.thucchien.ai/gemini/v1beta"`
	APIKey   string `help:"AI API key" env:"AI_API_KEY" required:""`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info"`

	Prompt  string        `arg:"" help:"Prompt describing the video"`
	Model   string        `help:"Video model" default:"veo-3.0-generate-001"`
	Image   string        `help:"Optional reference image to attach" type:"existingfile"`
	Output  string        `help:"Output file name" short:"o" default:"generated_video.mp4"`
	Timeout time.Duration `help:"Maximum time to wait for generation" default:"10m"`
}

func (cmd *GenVideoCmd) Run() error {
	logger := utils.NewLogger(cmd.LogLevel)
	client := genai.NewClient(cmd.BaseURL, cmd.APIKey, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	fmt.Println(ui.ProcessingStyle.Render("🎬 Starting video generation..."))
	opName, err := client.StartVideoGeneration(ctx, cmd.Model, cmd.Prompt, cmd.Image)
	if err != nil {
		return fmt.Errorf("video generation failed to start: %w", err)
	}
	fmt.Printf("Operation: %s\n", opName)

	fmt.Println(ui.InfoStyle.Render("⏳ Waiting for completion..."))
	uri, err := client.WaitForOperation(ctx, opName)
	if err != nil {
		return fmt.Errorf("video generation did not complete: %w", err)
	}

	if err := client.DownloadVideo(ctx, uri, cmd.Output); err != nil {
		return fmt.Errorf("video download failed: %w", err)
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ Video generated."))
	fmt.Printf("Done: %s\n", cmd.Output)
	return nil
}
