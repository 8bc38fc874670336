package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

// generator eino chat modelining bizga kerakli qismi
type generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type einoClient struct {
	chatModel generator
	timeout   time.Duration
	throttle  *throttle
	log       logrus.FieldLogger
}

// newEinoClient OpenAI bilan mos ixtiyoriy endpoint uchun client
func newEinoClient(ctx context.Context, opts clientOptions) (repository.AIRepository, error) {
	temperature := float32(opts.Temperature)
	maxTokens := opts.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     opts.BaseURL,
		APIKey:      opts.APIKey,
		Model:       opts.Model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &einoClient{
		chatModel: chatModel,
		timeout:   opts.Timeout,
		throttle:  opts.throttle,
		log:       opts.Log.WithField("provider", "openai"),
	}, nil
}

func (e *einoClient) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	release, err := e.throttle.acquire(ctx)
	if err != nil {
		return "", classify("openai", err)
	}
	defer release()

	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userPrompt},
	}
	resp, err := e.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", classify("openai", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", classify("openai", ErrEmptyResponse)
	}

	e.log.Debug("🤖 Chat model response received")
	return strings.TrimSpace(resp.Content), nil
}

func (e *einoClient) Close() error {
	return nil
}
