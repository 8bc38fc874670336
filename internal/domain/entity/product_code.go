package entity

import (
	"fmt"
	"time"
)

var regionCodes = map[string]string{
	"Global":  "GL",
	"China":   "CN",
	"Germany": "DE",
	"USA":     "US",
	"India":   "IN",
	"Turkey":  "TR",
	"Vietnam": "VN",
	"Mexico":  "MX",
	"UAE":     "AE",
	"Brazil":  "BR",
}

// RegionCode mamlakat uchun ikki harfli kod, noma'lum bo'lsa "XX"
func RegionCode(country string) string {
	if code, ok := regionCodes[country]; ok {
		return code
	}
	return "XX"
}

// ProductCode hisobot uchun mahsulot kodi: MR_<CC>_<supplier>_<product>_<dd.mm.yyyy>
func ProductCode(product Product, supplier Supplier, day time.Time) string {
	return fmt.Sprintf("MR_%s_%s_%s_%s",
		RegionCode(supplier.Country), supplier.ID, product.ID, day.Format("02.01.2006"))
}
