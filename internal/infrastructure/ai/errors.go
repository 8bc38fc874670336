package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrQuotaExceeded provayder limiti yoki kvotasi tugadi
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrEmptyResponse model bo'sh javob qaytardi
var ErrEmptyResponse = errors.New("ai returned empty response")

// classify provayder xatosini o'rab qaytaradi, kvota xatolari ErrQuotaExceeded bo'ladi
func classify(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s request aborted: %w", provider, err)
	}
	if isQuotaError(err) {
		return fmt.Errorf("%s: %w: %v", provider, ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%s request failed: %w", provider, err)
}

func isQuotaError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") ||
		strings.Contains(msg, "retry in") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource has been exhausted")
}
