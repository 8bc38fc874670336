package repository

import "context"

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// GenerateResponse system va user promptlar bo'yicha javob yaratish
	GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Close client ni yopish
	Close() error
}
