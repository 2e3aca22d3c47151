package genai

import (
	"context"
	"fmt"
)

// ChatMessage is one turn of an OpenAI-compatible conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends a single-turn prompt to /chat/completions and returns
// the first choice's message content.
func (c *Client) ChatCompletion(ctx context.Context, model, prompt string, temperature float64) (string, error) {
	req := chatRequest{
		Model:       model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}

	c.logger.Info("requesting chat completion", "model", model, "prompt_len", len(prompt))

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
