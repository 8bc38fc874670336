package repository

import (
	"context"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

// ReportBuilder hisobot faylini yaratish uchun interface
type ReportBuilder interface {
	// BuildReport hisobotni yozadi va fayl yo'lini qaytaradi
	BuildReport(ctx context.Context, entries []entity.ProductOffers) (string, error)
}
