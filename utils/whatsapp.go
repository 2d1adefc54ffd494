package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppSender sends messages via the WhatsApp Cloud API. New feedback is
// forwarded to the shopkeeper's phone this way.
type WhatsAppSender struct {
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	baseURL       string
}

// NewWhatsAppSender creates a new WhatsApp sender.
func NewWhatsAppSender(accessToken, phoneNumberID string) (*WhatsAppSender, error) {
	if accessToken == "" || phoneNumberID == "" {
		return nil, fmt.Errorf("WHATSAPP_ACCESS_TOKEN and WHATSAPP_PHONE_NUMBER_ID must be set")
	}
	return &WhatsAppSender{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       "https://graph.facebook.com/v18.0",
	}, nil
}

// whatsAppTextMessage is the Cloud API payload for a plain text message.
type whatsAppTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

type whatsAppResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText sends a text message and returns the provider message ID.
func (w *WhatsAppSender) SendText(to, body string) (string, error) {
	message := whatsAppTextMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
	}
	message.Text.Body = body

	url := fmt.Sprintf("%s/%s/messages", w.baseURL, w.phoneNumberID)
	jsonData, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("WhatsApp API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed whatsAppResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(parsed.Messages) == 0 {
		return "", fmt.Errorf("no message ID in response")
	}
	return parsed.Messages[0].ID, nil
}
