package entity

import "github.com/shopspring/decimal"

// Product katalogdagi mahsulot
type Product struct {
	ID           string
	Name         string
	FullName     string
	Category     string
	Unit         string
	DocUnit      string
	BasePriceUSD decimal.Decimal
	WeightKg     float64
	Dimensions   string // sm, masalan "6x4x3"
}

// ProductOffers topilgan mahsulot va uning narx bo'yicha saralangan takliflari
type ProductOffers struct {
	Product Product
	Offers  []Offer
}
