package entity

import "github.com/shopspring/decimal"

// Supplier yetkazib beruvchi
type Supplier struct {
	ID                string
	Name              string
	FullName          string
	Region            string
	Country           string
	URL               string
	TaxID             string
	WarehouseLocation string
	Status            string // "Verified", "Premium"
	Rating            float64
	DeliveryTime      string // erkin matn, masalan "7-14 days"
	MinOrderValue     decimal.Decimal
}
