package ai

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	timeout     time.Duration
	throttle    *throttle
	log         logrus.FieldLogger
}

// newGeminiClient yangi Gemini AI client yaratish
func newGeminiClient(ctx context.Context, opts clientOptions) (repository.AIRepository, error) {
	clientOpts := []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(grpcEndpoint(opts.BaseURL)))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		model:       opts.Model,
		temperature: float32(opts.Temperature),
		maxTokens:   int32(opts.MaxTokens),
		timeout:     opts.Timeout,
		throttle:    opts.throttle,
		log:         opts.Log.WithField("provider", "gemini"),
	}, nil
}

// GenerateResponse javob yaratish. System instruction har so'rovda beriladi,
// shuning uchun model har chaqiruvda yangidan sozlanadi.
func (g *geminiClient) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	release, err := g.throttle.acquire(ctx)
	if err != nil {
		return "", classify("gemini", err)
	}
	defer release()

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)
	model.SetMaxOutputTokens(g.maxTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", classify("gemini", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", classify("gemini", ErrEmptyResponse)
	}
	g.log.Debug("🤖 Gemini response received")
	return text, nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				result.WriteString(string(text))
			}
		}
	}
	return result.String()
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}

// grpcEndpoint LLM_BASE_URL ni gRPC "host:port" ko'rinishiga keltiradi:
// "https://host/v1beta" -> "host:443", "http://host:8080" -> "host:8080"
func grpcEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	port := "443"
	host := raw
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return raw
		}
		if u.Scheme == "http" {
			port = "80"
		}
		host = u.Host
	} else if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}

	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, port)
}
