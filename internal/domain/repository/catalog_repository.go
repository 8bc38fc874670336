package repository

import (
	"context"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

// CatalogRepository faqat o'qiladigan mahsulot va yetkazib beruvchilar katalogi
type CatalogRepository interface {
	// FindProduct nom yoki to'liq nom bo'yicha birinchi mos mahsulot
	FindProduct(ctx context.Context, query string) (entity.Product, bool)

	// ListSuppliers barcha yetkazib beruvchilar (doimiy tartibda)
	ListSuppliers(ctx context.Context) []entity.Supplier

	// ListProducts barcha mahsulotlar (katalog tartibida)
	ListProducts(ctx context.Context) []entity.Product
}
