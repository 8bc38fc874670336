package storage

import (
	"context"
	"strings"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

type indexedProduct struct {
	product       entity.Product
	nameLower     string
	fullNameLower string
}

// memoryCatalogRepository ishga tushishda bir marta yaratiladi, keyin faqat o'qiladi.
// Shuning uchun mutex kerak emas.
type memoryCatalogRepository struct {
	products  []indexedProduct
	suppliers []entity.Supplier
}

// NewMemoryCatalogRepository in-memory katalog yaratish
func NewMemoryCatalogRepository(products []entity.Product, suppliers []entity.Supplier) repository.CatalogRepository {
	indexed := make([]indexedProduct, 0, len(products))
	for _, p := range products {
		indexed = append(indexed, indexedProduct{
			product:       p,
			nameLower:     strings.ToLower(p.Name),
			fullNameLower: strings.ToLower(p.FullName),
		})
	}

	return &memoryCatalogRepository{
		products:  indexed,
		suppliers: append([]entity.Supplier(nil), suppliers...),
	}
}

// NewDefaultCatalogRepository o'rnatilgan jadvallar bilan katalog
func NewDefaultCatalogRepository() repository.CatalogRepository {
	return NewMemoryCatalogRepository(DefaultProducts(), DefaultSuppliers())
}

// FindProduct nom yoki to'liq nomda qism-satr qidirish (katta-kichik harf farqsiz).
// Eng yaxshi moslik emas, katalogdagi birinchi moslik qaytadi.
func (m *memoryCatalogRepository) FindProduct(ctx context.Context, query string) (entity.Product, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entity.Product{}, false
	}

	for _, p := range m.products {
		if strings.Contains(p.nameLower, query) || strings.Contains(p.fullNameLower, query) {
			return p.product, true
		}
	}
	return entity.Product{}, false
}

// ListSuppliers barcha yetkazib beruvchilar nusxasi
func (m *memoryCatalogRepository) ListSuppliers(ctx context.Context) []entity.Supplier {
	return append([]entity.Supplier(nil), m.suppliers...)
}

// ListProducts barcha mahsulotlar nusxasi
func (m *memoryCatalogRepository) ListProducts(ctx context.Context) []entity.Product {
	products := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p.product)
	}
	return products
}
