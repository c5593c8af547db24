package repository

import (
	"context"
	"fmt"
	"sentimentfactor/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

// SentimentClassifier labels a single news headline
type SentimentClassifier interface {
	Classify(ctx context.Context, headline string) (domain.SentimentLabel, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (SentimentClassifier, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const sentimentPrompt = `
You are a financial news sentiment classifier. You will be given a single news headline about a publicly traded company.

Respond with exactly one word describing the sentiment of the headline for the company's stock price:
- positive
- neutral
- negative

Do not include punctuation or any other text.
`

func (h gptRepositoryHandler) Classify(ctx context.Context, headline string) (domain.SentimentLabel, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: sentimentPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: headline,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to classify headline: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to classify headline: empty response")
	}

	label, err := domain.NewSentimentLabel(res.Choices[0].Message.Content)
	if err != nil {
		return "", fmt.Errorf("failed to parse classifier response: %w", err)
	}
	return label, nil
}
