package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// Gemini wraps the Generative AI SDK for the three jobs the platform needs:
// improvement suggestions, one-word sentiment, and emotion classification of
// a captured webcam frame.
type Gemini struct {
	apiKey string
}

func NewGemini(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

func (g *Gemini) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	if text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(text), nil
	}
	return "", fmt.Errorf("unexpected response part type")
}

// Suggest returns 2-3 practical improvement suggestions for a product based
// on the given feedback.
func (g *Gemini) Suggest(ctx context.Context, feedback, category, product string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert business consultant helping a retail shop owner improve a specific product based on customer feedback.

Customer Feedback: %q
Product: %s
Category: %s

Task: Give 2-3 direct and practical suggestions for improving the %s based on the above feedback.

Rules:
- DO NOT say the feedback is vague or unclear.
- DO NOT make generic suggestions.
- Each suggestion must be relevant to the product and feedback.
- Format:
1. Suggestion: <text>
   Why it helps: <brief reason>
`, feedback, product, category, product)

	return g.generate(ctx, genai.Text(prompt))
}

// Sentiment classifies feedback as Positive, Negative, or Neutral.
func (g *Gemini) Sentiment(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a sentiment analysis expert. Analyze the following customer feedback and respond ONLY with one word: Positive, Negative, or Neutral.

Feedback: %q`, text)

	out, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// DetectEmotion classifies the dominant facial emotion in a JPEG frame into
// one of the labels the star-rating mapping understands.
func (g *Gemini) DetectEmotion(ctx context.Context, image []byte) (string, error) {
	prompt := `Look at the person's face in this photo and classify the dominant emotion. Respond ONLY with one lowercase word out of: angry, sad, neutral, surprise, happy.`

	out, err := g.generate(ctx, genai.Text(prompt), genai.ImageData("jpeg", image))
	if err != nil {
		return "", err
	}
	emotion := strings.ToLower(strings.TrimSpace(out))
	emotion = strings.Trim(emotion, ".!\"'")
	return emotion, nil
}
