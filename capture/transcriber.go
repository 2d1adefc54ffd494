package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

// HTTPTranscriber sends recorded audio to a speech-to-text service. The
// service accepts a multipart upload and either answers with the transcript
// immediately or with a job id to poll.
type HTTPTranscriber struct {
	baseURL string
}

func NewHTTPTranscriber(baseURL string) *HTTPTranscriber {
	return &HTTPTranscriber{baseURL: strings.TrimRight(baseURL, "/")}
}

type transcribeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

func (t *HTTPTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if t.baseURL == "" {
		return "", fmt.Errorf("TRANSCRIBE_URL not set")
	}

	resp, err := t.publish(ctx, audio)
	if err != nil {
		return "", err
	}
	if resp.Text != "" {
		return resp.Text, nil
	}
	if resp.ID == "" {
		return "", fmt.Errorf("transcription service returned neither text nor job id")
	}
	return t.poll(ctx, resp.ID)
}

func (t *HTTPTranscriber) publish(ctx context.Context, audio []byte) (*transcribeResponse, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	part, err := w.CreateFormFile("audio", "recording.wav")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	w.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/transcribe", &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out transcribeResponse
	if err := doJSON(req, &out); err != nil {
		return nil, fmt.Errorf("transcribe publish failed: %w", err)
	}
	return &out, nil
}

func (t *HTTPTranscriber) poll(ctx context.Context, id string) (string, error) {
	for i := 0; i < 40; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(1500 * time.Millisecond):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/transcripts/"+id, nil)
		if err != nil {
			return "", err
		}
		var s transcribeResponse
		if err := doJSON(req, &s); err != nil {
			continue
		}
		switch s.Status {
		case "done":
			return s.Text, nil
		case "queued", "processing":
			continue
		case "failed":
			return "", fmt.Errorf("transcription failed: %s", s.Reason)
		}
	}
	return "", fmt.Errorf("transcription timeout")
}

// doJSON performs the request with bounded retries on transport and 5xx
// errors, decoding the JSON body into target.
func doJSON(req *http.Request, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second

	var lastErr error
	operation := func() error {
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", body)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("request failed: status %d: %s", resp.StatusCode, body)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return backoff.Permanent(lastErr)
		}
		lastErr = nil
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
