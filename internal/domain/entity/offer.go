package entity

import "github.com/shopspring/decimal"

// Offer bitta yetkazib beruvchining bitta mahsulot uchun hisoblangan narxi.
// FinalPriceRUB = PriceRUB + DeliveryRUB + StorageRUB + AdditionalRUB.
type Offer struct {
	Supplier Supplier

	PriceUSD decimal.Decimal
	PriceRUB decimal.Decimal

	DeliveryPercent decimal.Decimal
	DeliveryRUB     decimal.Decimal

	StoragePercent decimal.Decimal
	StorageRUB     decimal.Decimal

	AdditionalCostName string
	AdditionalPercent  decimal.Decimal
	AdditionalRUB      decimal.Decimal

	FinalPriceRUB decimal.Decimal
	FinalPriceUSD decimal.Decimal

	MOQ      decimal.Decimal
	LeadTime string
}
