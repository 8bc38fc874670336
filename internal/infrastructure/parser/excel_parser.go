package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

const (
	ProductsSheet  = "Products"
	SuppliersSheet = "Suppliers"
)

// header nomlari normalizeHeader dan keyin shu kalitlarga moslanadi
var productColumns = map[string]string{
	"id":              "id",
	"productid":       "id",
	"code":            "id",
	"name":            "name",
	"productname":     "name",
	"fullname":        "full_name",
	"fullproductname": "full_name",
	"category":        "category",
	"unit":            "unit",
	"docunit":         "doc_unit",
	"basepriceusd":    "base_price",
	"baseprice":       "base_price",
	"price":           "base_price",
	"priceusd":        "base_price",
	"weightkg":        "weight",
	"weight":          "weight",
	"productweightkg": "weight",
	"dimensionscm":    "dimensions",
	"dimensions":      "dimensions",
}

var supplierColumns = map[string]string{
	"id":                "id",
	"supplierid":        "id",
	"name":              "name",
	"supplier":          "name",
	"suppliername":      "name",
	"fullname":          "full_name",
	"region":            "region",
	"country":           "country",
	"suppliercountry":   "country",
	"url":               "url",
	"website":           "url",
	"supplierwebsite":   "url",
	"taxid":             "tax_id",
	"suppliertaxid":     "tax_id",
	"warehouselocation": "warehouse",
	"warehouse":         "warehouse",
	"status":            "status",
	"supplierstatus":    "status",
	"rating":            "rating",
	"supplierrating":    "rating",
	"deliverytime":      "delivery_time",
	"leadtime":          "delivery_time",
	"minordervalue":     "min_order",
	"moq":               "min_order",
	"moqusd":            "min_order",
}

type excelParser struct {
	log logrus.FieldLogger
}

// NewExcelParser yangi katalog parser yaratish
func NewExcelParser(log logrus.FieldLogger) repository.CatalogParser {
	return &excelParser{log: log}
}

// ParseCatalog Excel fayldan katalogni o'qish
func (e *excelParser) ParseCatalog(ctx context.Context, filePath string) (*repository.Catalog, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseWorkbook(f, filepath.Base(filePath))
}

func (e *excelParser) parseWorkbook(f *excelize.File, source string) (*repository.Catalog, error) {
	productRows, err := e.sheetRows(f, ProductsSheet)
	if err != nil {
		return nil, err
	}
	supplierRows, err := e.sheetRows(f, SuppliersSheet)
	if err != nil {
		return nil, err
	}

	products := e.parseProducts(productRows)
	if len(products) == 0 {
		return nil, fmt.Errorf("no valid products found in sheet %q (parsed %d rows)", ProductsSheet, max(len(productRows)-1, 0))
	}

	suppliers := e.parseSuppliers(supplierRows)
	if len(suppliers) == 0 {
		return nil, fmt.Errorf("no valid suppliers found in sheet %q (parsed %d rows)", SuppliersSheet, max(len(supplierRows)-1, 0))
	}

	e.log.WithFields(logrus.Fields{
		"source":    source,
		"products":  len(products),
		"suppliers": len(suppliers),
	}).Info("📦 Catalog workbook parsed")

	return &repository.Catalog{
		Products:  products,
		Suppliers: suppliers,
		Source:    source,
	}, nil
}

func (e *excelParser) sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("excel file has no %q sheet", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return rows, nil
}

func (e *excelParser) parseProducts(rows [][]string) []entity.Product {
	columns := mapColumns(rows[0], productColumns)
	if !hasColumns(columns, "id", "name", "base_price") {
		e.log.Warnf("⚠️ %s sheet needs id, name and base price columns, got %v", ProductsSheet, rows[0])
		return nil
	}

	var products []entity.Product
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		id := cell(row, columns, "id")
		name := cell(row, columns, "name")
		if id == "" || name == "" {
			e.log.Warnf("⚠️ %s row %d: empty id or name - skipping", ProductsSheet, i+1)
			continue
		}

		price, err := parsePrice(cell(row, columns, "base_price"))
		if err != nil || !price.IsPositive() {
			e.log.Warnf("⚠️ %s row %d: invalid base price %q - skipping", ProductsSheet, i+1, cell(row, columns, "base_price"))
			continue
		}

		var weight float64
		if raw := cell(row, columns, "weight"); raw != "" {
			if weight, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err != nil {
				e.log.Warnf("⚠️ %s row %d: invalid weight %q - skipping", ProductsSheet, i+1, raw)
				continue
			}
		}

		products = append(products, entity.Product{
			ID:           id,
			Name:         name,
			FullName:     nonEmpty(cell(row, columns, "full_name"), name),
			Category:     nonEmpty(cell(row, columns, "category"), "Other"),
			Unit:         nonEmpty(cell(row, columns, "unit"), "pcs"),
			DocUnit:      nonEmpty(cell(row, columns, "doc_unit"), "pcs"),
			BasePriceUSD: price,
			WeightKg:     weight,
			Dimensions:   cell(row, columns, "dimensions"),
		})
	}
	return products
}

func (e *excelParser) parseSuppliers(rows [][]string) []entity.Supplier {
	columns := mapColumns(rows[0], supplierColumns)
	if !hasColumns(columns, "id", "name") {
		e.log.Warnf("⚠️ %s sheet needs id and name columns, got %v", SuppliersSheet, rows[0])
		return nil
	}

	var suppliers []entity.Supplier
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		id := cell(row, columns, "id")
		name := cell(row, columns, "name")
		if id == "" || name == "" {
			e.log.Warnf("⚠️ %s row %d: empty id or name - skipping", SuppliersSheet, i+1)
			continue
		}

		var rating float64
		if raw := cell(row, columns, "rating"); raw != "" {
			r, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil || r < 0 || r > 5 {
				e.log.Warnf("⚠️ %s row %d: rating %q must be 0..5 - skipping", SuppliersSheet, i+1, raw)
				continue
			}
			rating = r
		}

		minOrder := decimal.Zero
		if raw := cell(row, columns, "min_order"); raw != "" {
			v, err := parsePrice(raw)
			if err != nil || v.IsNegative() {
				e.log.Warnf("⚠️ %s row %d: invalid minimum order %q - skipping", SuppliersSheet, i+1, raw)
				continue
			}
			minOrder = v
		}

		suppliers = append(suppliers, entity.Supplier{
			ID:                id,
			Name:              name,
			FullName:          nonEmpty(cell(row, columns, "full_name"), name),
			Region:            cell(row, columns, "region"),
			Country:           cell(row, columns, "country"),
			URL:               cell(row, columns, "url"),
			TaxID:             cell(row, columns, "tax_id"),
			WarehouseLocation: cell(row, columns, "warehouse"),
			Status:            nonEmpty(cell(row, columns, "status"), "Verified"),
			Rating:            rating,
			DeliveryTime:      cell(row, columns, "delivery_time"),
			MinOrderValue:     minOrder,
		})
	}
	return suppliers
}

// mapColumns header qatoridan column mapping yaratish
func mapColumns(header []string, known map[string]string) map[string]int {
	columnMap := make(map[string]int)
	for i, col := range header {
		field, ok := known[normalizeHeader(col)]
		if !ok {
			continue
		}
		// birinchi mos ustun ustun turadi
		if _, exists := columnMap[field]; !exists {
			columnMap[field] = i
		}
	}
	return columnMap
}

// normalizeHeader "Base Price (USD)" -> "basepriceusd"
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasColumns(columns map[string]int, fields ...string) bool {
	for _, f := range fields {
		if _, ok := columns[f]; !ok {
			return false
		}
	}
	return true
}

func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func nonEmpty(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

// parsePrice narxni parse qilish ("$1,250.50", "45.99 usd")
func parsePrice(priceStr string) (decimal.Decimal, error) {
	priceStr = strings.ToLower(strings.TrimSpace(priceStr))
	if priceStr == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}

	replacer := strings.NewReplacer(",", "", " ", "", "$", "", "€", "", "₽", "", "usd", "", "rub", "")
	cleaned := replacer.Replace(priceStr)

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price format: %s", priceStr)
	}
	return price, nil
}
