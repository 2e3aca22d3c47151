package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartVideoGeneration(t *testing.T) {
	var gotPath string
	var gotBody videoRequest

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"name":"operations/abc123"}`))
	}))

	name, err := c.StartVideoGeneration(context.Background(), "veo-3.0-generate-001", "a cat with wings", "")
	require.NoError(t, err)

	assert.Equal(t, "/models/veo-3.0-generate-001:predictLongRunning", gotPath)
	require.Len(t, gotBody.Instances, 1)
	assert.Equal(t, "a cat with wings", gotBody.Instances[0].Prompt)
	assert.Nil(t, gotBody.Instances[0].Image)
	assert.Equal(t, "operations/abc123", name)
}

func TestStartVideoGeneration_WithReferenceImage(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "ref.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0644))

	var gotBody videoRequest
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"name":"operations/abc123"}`))
	}))

	_, err := c.StartVideoGeneration(context.Background(), "veo-3.0-generate-001", "p", imgPath)
	require.NoError(t, err)

	require.NotNil(t, gotBody.Instances[0].Image)
	assert.Equal(t, "image/png", gotBody.Instances[0].Image.MimeType)
	assert.Equal(t, "cG5nLWJ5dGVz", gotBody.Instances[0].Image.BytesBase64Encoded)
}

func TestStartVideoGeneration_NoOperationName(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := c.StartVideoGeneration(context.Background(), "m", "p", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operation name")
}

func TestWaitForOperation(t *testing.T) {
	var polls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/operations/abc123", r.URL.Path)
		if polls.Add(1) < 3 {
			w.Write([]byte(`{"name":"operations/abc123","done":false}`))
			return
		}
		w.Write([]byte(`{"name":"operations/abc123","done":true,"response":{"generateVideoResponse":` +
			`{"generatedSamples":[{"video":{"uri":"https://generativelanguage.googleapis.com/v1beta/files/f1"}}]}}}`))
	}))

	uri, err := c.WaitForOperation(context.Background(), "operations/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/files/f1", uri)
	assert.Equal(t, int32(3), polls.Load())
}

func TestWaitForOperation_OperationError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"op","done":true,"error":{"code":13,"message":"generation rejected"}}`))
	}))

	_, err := c.WaitForOperation(context.Background(), "op")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation rejected")
}

func TestWaitForOperation_DoneWithoutSample(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"op","done":true}`))
	}))

	_, err := c.WaitForOperation(context.Background(), "op")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a video sample")
}

func TestWaitForOperation_ContextCancelled(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"op","done":false}`))
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.WaitForOperation(ctx, "op")
	require.Error(t, err)
}

func TestDownloadVideo(t *testing.T) {
	payload := []byte("mp4 payload bytes")

	var gotPath string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(payload)
	}))

	outPath := filepath.Join(t.TempDir(), "out.mp4")
	err := c.DownloadVideo(context.Background(), "v1beta/files/f1:download?alt=media", outPath)
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/files/f1:download", gotPath)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadVideo_EmptyBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	outPath := filepath.Join(t.TempDir(), "out.mp4")
	err := c.DownloadVideo(context.Background(), "v1beta/files/f1", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.NoFileExists(t, outPath)
}

func TestDownloadURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		uri      string
		expected string
	}{
		{
			name:     "Google URI rewritten onto proxy download base",
			base:     "https://proxy.example/gemini/v1beta",
			uri:      "https://generativelanguage.googleapis.com/v1beta/files/abc",
			expected: "https://proxy.example/gemini/download/v1beta/files/abc",
		},
		{
			name:     "Relative URI kept as-is",
			base:     "https://proxy.example/gemini/v1beta",
			uri:      "v1beta/files/abc",
			expected: "https://proxy.example/gemini/download/v1beta/files/abc",
		},
		{
			name:     "Base without v1beta suffix unchanged",
			base:     "https://proxy.example/api",
			uri:      "files/abc",
			expected: "https://proxy.example/api/files/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.base, "k", testLogger())
			assert.Equal(t, tt.expected, c.downloadURL(tt.uri))
		})
	}
}
