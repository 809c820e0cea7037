/*
Package chat provides a Gemini-backed assistant that answers questions about
the news feed and how its sentiment scores are produced.
*/
package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const systemInstruction = `You are a helpful news assistant embedded in a news sentiment analyzer.
The analyzer fetches recent articles and shows four VADER sentiment scores
(positive, negative, neutral, compound) plus a Positive/Neutral/Negative label
for each article.

When answering:
1. Directly address the user's question.
2. Keep a professional and engaging tone.
3. Be concise and clear.
4. If asked about sentiment analysis, explain how lexicon-based scoring works.`

// Assistant wraps a Gemini model behind a single Reply call.
type Assistant struct {
	client *genai.Client
	model  string
}

// New creates an assistant for the given model name.
func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Assistant{client: client, model: model}, nil
}

// Reply sends the user message to the model and returns its text answer.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "system",
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: message}},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
