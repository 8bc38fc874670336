package ai

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

// GroqBaseURL Groq ning OpenAI bilan mos API manzili
const GroqBaseURL = "https://api.groq.com/openai/v1"

type groqClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	throttle    *throttle
	log         logrus.FieldLogger
}

func newGroqClient(opts clientOptions) repository.AIRepository {
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = GroqBaseURL
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	return &groqClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
		timeout:     opts.Timeout,
		throttle:    opts.throttle,
		log:         opts.Log.WithField("provider", "groq"),
	}
}

// GenerateResponse chat completion so'rovi
func (g *groqClient) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	release, err := g.throttle.acquire(ctx)
	if err != nil {
		return "", classify("groq", err)
	}
	defer release()

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", classify("groq", err)
	}
	if len(resp.Choices) == 0 {
		return "", classify("groq", ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", classify("groq", ErrEmptyResponse)
	}
	g.log.WithField("tokens", resp.Usage.TotalTokens).Debug("🤖 Groq response received")
	return text, nil
}

func (g *groqClient) Close() error {
	return nil
}
