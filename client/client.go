// Package client is the typed HTTP client the kiosk uses to talk to the
// feedback backend. The backend host is a single runtime configuration
// value; the old frontend hardcoded one host per page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/cenkalti/backoff/v4"
)

// Client talks to the feedback backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WaitReady polls /healthz with exponential backoff until the backend
// answers or the backoff gives up. Only startup waits are retried; feedback
// submissions never are.
func (c *Client) WaitReady(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("backend not ready: status %d", resp.StatusCode)
		}
		return nil
	}
	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}

// Categories fetches the feedback category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "/get_categories", &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Products fetches the menu with prices.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/get_products", &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// SubmitTextFeedback posts a typed feedback. The field order in the
// url-encoded body matches the original frontend: feedback, category,
// product.
func (c *Client) SubmitTextFeedback(ctx context.Context, feedback, category, product string) error {
	body := formBody(
		field{"feedback", feedback},
		field{"category", category},
		field{"product", product},
	)
	var out struct {
		Error string `json:"error"`
	}
	return c.postForm(ctx, "/submit_text_feedback", body, &out)
}

// AISuggestion requests an improvement suggestion for the same three fields.
func (c *Client) AISuggestion(ctx context.Context, feedback, category, product string) (string, error) {
	body := formBody(
		field{"feedback", feedback},
		field{"category", category},
		field{"product", product},
	)
	var out struct {
		Suggestion string `json:"suggestion"`
	}
	if err := c.postForm(ctx, "/get_ai_suggestion", body, &out); err != nil {
		return "", err
	}
	return out.Suggestion, nil
}

// SubmitVoiceFeedback posts a transcribed feedback and returns the AI
// suggestion the backend generated for it.
func (c *Client) SubmitVoiceFeedback(ctx context.Context, text, category, product string) (string, error) {
	body := formBody(
		field{"text", text},
		field{"category", category},
		field{"product", product},
	)
	var out struct {
		AISuggestion string `json:"ai_suggestion"`
	}
	if err := c.postForm(ctx, "/submit_voice_feedback", body, &out); err != nil {
		return "", err
	}
	return out.AISuggestion, nil
}

// DetectEmotion posts a captured JPEG frame and returns the detected emotion
// label.
func (c *Client) DetectEmotion(ctx context.Context, frame []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "captured.jpg")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(frame); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/detect_emotion", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out struct {
		Emotion string `json:"emotion"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Emotion, nil
}

// SubmitEmotionFeedback posts the detected emotion and derived rating. The
// reason, its modality tag, and the category/product pair are only included
// when a reason was captured.
func (c *Client) SubmitEmotionFeedback(ctx context.Context, emotion string, rating int, reason, reasonType, category, product string) error {
	fields := []field{
		{"emotion", emotion},
		{"rating", strconv.Itoa(rating)},
	}
	if reason != "" && reasonType != "" {
		key := "reason_voice"
		if reasonType == "text" {
			key = "reason_text"
		}
		fields = append(fields,
			field{key, reason},
			field{"category", category},
			field{"product", product},
		)
	}
	return c.postForm(ctx, "/submit_emotion_feedback", formBody(fields...), nil)
}

type field struct {
	key, value string
}

// formBody url-encodes fields preserving their order. url.Values.Encode
// sorts keys alphabetically, which would reorder the wire format.
func formBody(fields ...field) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, url.QueryEscape(f.key)+"="+url.QueryEscape(f.value))
	}
	return strings.Join(pairs, "&")
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path, body string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			return fmt.Errorf("%s", errBody.Error)
		}
		return fmt.Errorf("submission failed: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
