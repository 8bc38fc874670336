package repository

import (
	"context"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

// Catalog Excel fayldan o'qilgan jadvallar
type Catalog struct {
	Products  []entity.Product
	Suppliers []entity.Supplier
	Source    string
}

// CatalogParser katalog workbook ni parse qilish uchun interface
type CatalogParser interface {
	// ParseCatalog Excel fayldan katalogni o'qish
	ParseCatalog(ctx context.Context, filePath string) (*Catalog, error)
}
