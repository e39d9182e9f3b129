package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
)

const summarizeSystemPrompt = "You summarize medical news articles in two sentences and name the single " +
	"key industry trend the article evidences. Answer as plain text: the summary first, " +
	"then a final line starting with \"Trend:\"."

// Summarizer produces a short digest of an article through a one-shot
// completion on the raw SDK client. With no client configured it returns
// a fixed placeholder digest so offline cycles still complete.
type Summarizer struct {
	client *openaisdk.Client
	model  string
}

func NewSummarizer(client *openaisdk.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("text is required")
	}

	if s == nil || s.client == nil {
		return "Summary: New treatment shows promise. Trend: AI in drug discovery is growing.", nil
	}

	resp, err := s.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(s.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(summarizeSystemPrompt),
			openaisdk.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("summarize completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("summarize completion returned empty content")
	}
	return content, nil
}
