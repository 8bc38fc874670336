package storage

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

// DefaultSuppliers o'rnatilgan 10 ta yetkazib beruvchi
func DefaultSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{
			ID: "SUP001", Name: "Global Suppliers Inc.", FullName: "Global Suppliers Incorporated",
			Region: "Global", Country: "International", URL: "https://globalsuppliers.com",
			TaxID: "GSI-2024-001", WarehouseLocation: "Multiple locations worldwide",
			Status: "Verified", Rating: 4.8, DeliveryTime: "7-14 days", MinOrderValue: decimal.NewFromInt(500),
		},
		{
			ID: "SUP002", Name: "China Direct Trading", FullName: "China Direct Trading Co., Ltd.",
			Region: "Guangdong", Country: "China", URL: "https://chinadirect.com",
			TaxID: "CDT-CN-2024", WarehouseLocation: "Shenzhen, China",
			Status: "Verified", Rating: 4.5, DeliveryTime: "14-21 days", MinOrderValue: decimal.NewFromInt(300),
		},
		{
			ID: "SUP003", Name: "EuroQuality Goods", FullName: "EuroQuality Goods GmbH",
			Region: "Bavaria", Country: "Germany", URL: "https://euroquality.de",
			TaxID: "DE123456789", WarehouseLocation: "Munich, Germany",
			Status: "Premium", Rating: 4.9, DeliveryTime: "3-5 days", MinOrderValue: decimal.NewFromInt(1000),
		},
		{
			ID: "SUP004", Name: "US Wholesale Corp", FullName: "US Wholesale Corporation",
			Region: "California", Country: "USA", URL: "https://uswholesale.com",
			TaxID: "US-2024-WH", WarehouseLocation: "Los Angeles, USA",
			Status: "Verified", Rating: 4.6, DeliveryTime: "5-7 days", MinOrderValue: decimal.NewFromInt(750),
		},
		{
			ID: "SUP005", Name: "India Export Hub", FullName: "India Export Hub Private Limited",
			Region: "Maharashtra", Country: "India", URL: "https://indiaexporthub.in",
			TaxID: "IN-MH-2024", WarehouseLocation: "Mumbai, India",
			Status: "Verified", Rating: 4.4, DeliveryTime: "10-15 days", MinOrderValue: decimal.NewFromInt(200),
		},
		{
			ID: "SUP006", Name: "Turkey Textile Masters", FullName: "Turkey Textile Masters A.Ş.",
			Region: "Istanbul", Country: "Turkey", URL: "https://turkeytextile.com",
			TaxID: "TR-IST-2024", WarehouseLocation: "Istanbul, Turkey",
			Status: "Premium", Rating: 4.7, DeliveryTime: "7-10 days", MinOrderValue: decimal.NewFromInt(400),
		},
		{
			ID: "SUP007", Name: "Vietnam Manufacturing", FullName: "Vietnam Manufacturing Joint Stock Company",
			Region: "Ho Chi Minh City", Country: "Vietnam", URL: "https://vietnammanufacturing.vn",
			TaxID: "VN-HCM-2024", WarehouseLocation: "Ho Chi Minh City, Vietnam",
			Status: "Verified", Rating: 4.3, DeliveryTime: "12-18 days", MinOrderValue: decimal.NewFromInt(250),
		},
		{
			ID: "SUP008", Name: "Mexico Trade Center", FullName: "Mexico Trade Center S.A. de C.V.",
			Region: "Mexico City", Country: "Mexico", URL: "https://mexicotrade.com.mx",
			TaxID: "MX-MEX-2024", WarehouseLocation: "Mexico City, Mexico",
			Status: "Verified", Rating: 4.2, DeliveryTime: "8-12 days", MinOrderValue: decimal.NewFromInt(350),
		},
		{
			ID: "SUP009", Name: "Dubai Trading Group", FullName: "Dubai Trading Group LLC",
			Region: "Dubai", Country: "UAE", URL: "https://dubaitrading.ae",
			TaxID: "AE-DXB-2024", WarehouseLocation: "Dubai, UAE",
			Status: "Premium", Rating: 4.8, DeliveryTime: "4-7 days", MinOrderValue: decimal.NewFromInt(600),
		},
		{
			ID: "SUP010", Name: "Brazil Export Solutions", FullName: "Brazil Export Solutions Ltda.",
			Region: "São Paulo", Country: "Brazil", URL: "https://brazilexport.com.br",
			TaxID: "BR-SP-2024", WarehouseLocation: "São Paulo, Brazil",
			Status: "Verified", Rating: 4.1, DeliveryTime: "15-20 days", MinOrderValue: decimal.NewFromInt(450),
		},
	}
}

// DefaultProducts o'rnatilgan 10 ta mahsulot
func DefaultProducts() []entity.Product {
	return []entity.Product{
		product("PROD001", "Wireless Earbuds", "Premium Wireless Bluetooth 5.0 Earbuds with Charging Case", "Electronics", "45.99", 0.05, "6x4x3"),
		product("PROD002", "Smart Watch", "Smart Watch with Heart Rate Monitor and GPS", "Electronics", "89.99", 0.08, "4x4x1"),
		product("PROD003", "Yoga Mat", "Premium Non-Slip Yoga Mat 183x61x0.6 cm", "Fitness", "24.99", 1.2, "183x61x6"),
		product("PROD004", "LED Desk Lamp", "USB LED Desk Lamp with Adjustable Brightness", "Home & Office", "19.99", 0.6, "35x15x15"),
		product("PROD005", "Stainless Steel Water Bottle", "Insulated Stainless Steel Water Bottle 750ml", "Sports", "29.99", 0.35, "25x8x8"),
		product("PROD006", "Portable Power Bank", "10000mAh Portable Power Bank with Fast Charging", "Electronics", "34.99", 0.22, "10x6x2"),
		product("PROD007", "Phone Case", "Shockproof Phone Case for iPhone 14/15", "Accessories", "12.99", 0.03, "16x8x1"),
		product("PROD008", "Bluetooth Speaker", "Waterproof Portable Bluetooth Speaker", "Electronics", "39.99", 0.45, "12x12x6"),
		product("PROD009", "Fitness Tracker", "Fitness Tracker with Sleep Monitor", "Fitness", "49.99", 0.02, "4x2x1"),
		product("PROD010", "Backpack", "Waterproof Laptop Backpack 15.6 inch", "Travel", "44.99", 0.8, "45x30x15"),
	}
}

func product(id, name, fullName, category, basePrice string, weight float64, dims string) entity.Product {
	return entity.Product{
		ID:           id,
		Name:         name,
		FullName:     fullName,
		Category:     category,
		Unit:         "pcs",
		DocUnit:      "pcs",
		BasePriceUSD: decimal.RequireFromString(basePrice),
		WeightKg:     weight,
		Dimensions:   dims,
	}
}
