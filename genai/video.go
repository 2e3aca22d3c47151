package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

const googleFilesPrefix = "https://generativelanguage.googleapis.com/"

type videoInstance struct {
	Prompt string       `json:"prompt"`
	Image  *inlineImage `json:"image,omitempty"`
}

type inlineImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type videoRequest struct {
	Instances []videoInstance `json:"instances"`
}

type operationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type operation struct {
	Name     string          `json:"name"`
	Done     bool            `json:"done"`
	Error    *operationError `json:"error"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

// StartVideoGeneration kicks off a long-running video generation and returns
// the operation name to poll. imagePath optionally attaches a reference image
// inline as base64.
func (c *Client) StartVideoGeneration(ctx context.Context, model, prompt, imagePath string) (string, error) {
	instance := videoInstance{Prompt: prompt}
	if imagePath != "" {
		raw, err := os.ReadFile(imagePath)
		if err != nil {
			return "", fmt.Errorf("read reference image: %w", err)
		}
		mime := "image/jpeg"
		if strings.HasSuffix(strings.ToLower(imagePath), ".png") {
			mime = "image/png"
		}
		instance.Image = &inlineImage{
			BytesBase64Encoded: base64.StdEncoding.EncodeToString(raw),
			MimeType:           mime,
		}
	}

	c.logger.Info("starting video generation", "model", model, "has_image", instance.Image != nil)

	var op operation
	path := fmt.Sprintf("/models/%s:predictLongRunning", model)
	if err := c.postJSON(ctx, path, videoRequest{Instances: []videoInstance{instance}}, &op); err != nil {
		return "", err
	}
	if op.Name == "" {
		return "", fmt.Errorf("video generation returned no operation name")
	}
	return op.Name, nil
}

// WaitForOperation polls the operation until it completes and returns the
// generated video URI. Polling starts at the client's base interval and backs
// off gently; the context bounds the total wait.
func (c *Client) WaitForOperation(ctx context.Context, name string) (string, error) {
	interval := c.pollInterval
	start := time.Now()

	for {
		var op operation
		if err := c.getJSON(ctx, "/"+strings.TrimLeft(name, "/"), &op); err != nil {
			return "", err
		}

		if op.Error != nil {
			return "", fmt.Errorf("video generation failed: %s (code %d)", op.Error.Message, op.Error.Code)
		}
		if op.Done {
			resp := op.Response
			if resp == nil || len(resp.GenerateVideoResponse.GeneratedSamples) == 0 {
				return "", fmt.Errorf("operation finished without a video sample")
			}
			uri := resp.GenerateVideoResponse.GeneratedSamples[0].Video.URI
			if uri == "" {
				return "", fmt.Errorf("operation finished without a video URI")
			}
			return uri, nil
		}

		c.logger.Info("video generation pending", "operation", name, "elapsed", time.Since(start).Round(time.Second).String())

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
		interval = time.Duration(float64(interval) * 1.2)
		if interval > c.pollCap {
			interval = c.pollCap
		}
	}
}

// DownloadVideo streams the generated video to outPath, rewriting the
// upstream Google URI onto the proxy's download base. Fails when the server
// hands back an empty body.
func (c *Client) DownloadVideo(ctx context.Context, uri, outPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.downloadURL(uri), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.apply(req)

	resp, err := c.download.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
	written, err := io.Copy(io.MultiWriter(f, bar), resp.Body)
	if err != nil {
		os.Remove(outPath)
		return fmt.Errorf("download failed: %w", err)
	}
	if written == 0 {
		os.Remove(outPath)
		return fmt.Errorf("downloaded file is empty")
	}

	c.logger.Info("video downloaded", "path", outPath, "bytes", written)
	return nil
}

// downloadURL maps the Google file URI to the proxy's streaming endpoint:
// the googleapis host is stripped and the /v1beta API base becomes /download.
func (c *Client) downloadURL(uri string) string {
	relative := strings.TrimPrefix(uri, googleFilesPrefix)
	base := c.baseURL
	if strings.HasSuffix(base, "/v1beta") {
		base = strings.TrimSuffix(base, "/v1beta") + "/download"
	}
	return base + "/" + strings.TrimLeft(relative, "/")
}
