package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// GenerateImages requests n images from /images/generations, decodes the
// inline base64 payloads and writes them to outDir as
// generated_image_<i>.png. Returns the written paths.
func (c *Client) GenerateImages(ctx context.Context, model, prompt string, n int, outDir string) ([]string, error) {
	c.logger.Info("requesting image generation", "model", model, "n", n)

	var resp imageResponse
	if err := c.postJSON(ctx, "/images/generations", imageRequest{Model: model, Prompt: prompt, N: n}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("image generation returned no data")
	}

	paths := make([]string, 0, len(resp.Data))
	for i, img := range resp.Data {
		raw, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return paths, fmt.Errorf("decode image %d: %w", i+1, err)
		}
		savePath := filepath.Join(outDir, fmt.Sprintf("generated_image_%d.png", i+1))
		if err := os.WriteFile(savePath, raw, 0644); err != nil {
			return paths, fmt.Errorf("write image %d: %w", i+1, err)
		}
		c.logger.Info("image saved", "path", savePath, "bytes", len(raw))
		paths = append(paths, savePath)
	}
	return paths, nil
}
