package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/config"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

type clientOptions struct {
	config.LLMConfig
	Log      logrus.FieldLogger
	throttle *throttle
}

// NewClient konfiguratsiyadagi provayder uchun AI client yaratish
func NewClient(ctx context.Context, cfg config.LLMConfig, log logrus.FieldLogger) (repository.AIRepository, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s api key is empty", cfg.Provider)
	}

	opts := clientOptions{
		LLMConfig: cfg,
		Log:       log,
		throttle:  newThrottle(cfg.MaxConcurrent, cfg.MinInterval),
	}

	switch cfg.Provider {
	case config.ProviderGroq, "":
		return newGroqClient(opts), nil
	case config.ProviderGemini:
		return newGeminiClient(ctx, opts)
	case config.ProviderOpenAI:
		return newEinoClient(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
