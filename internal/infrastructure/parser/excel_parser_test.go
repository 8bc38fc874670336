package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"
)

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
}

func newCatalogWorkbook(t *testing.T, products, suppliers [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet(SuppliersSheet); err != nil {
		t.Fatal(err)
	}
	writeRows(t, f, ProductsSheet, products)
	writeRows(t, f, SuppliersSheet, suppliers)
	return f
}

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

var supplierSheet = [][]any{
	{"ID", "Name", "Country", "Rating", "Lead Time", "MOQ (USD)", "Status"},
	{"S1", "Alpha Trade", "China", 4.5, "10-12 days", 300, "Premium"},
	{"S2", "Beta Goods", "Germany", "bad", "3-5 days", 100, ""},
	{"S3", "Gamma Ltd", "Peru", 3.9, "20 days", "$1,200", ""},
}

func TestParseCatalog(t *testing.T) {
	f := newCatalogWorkbook(t,
		[][]any{
			{"Product ID", "Product Name", "Full Product Name", "Category", "Base Price (USD)", "Weight (kg)", "Dimensions (cm)"},
			{"P1", "Desk Fan", "Quiet USB Desk Fan", "Home", 15.5, 0.4, "20x20x10"},
			{},
			{"P2", "Mug", "", "", "$7.25", "", ""},
			{"P3", "Broken", "Broken item", "Misc", "n/a", 1, ""},
			{"", "No id", "", "", 3, "", ""},
		},
		supplierSheet,
	)

	logger, hook := test.NewNullLogger()
	catalog, err := NewExcelParser(logger).ParseCatalog(context.Background(), saveWorkbook(t, f))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	if len(catalog.Products) != 2 {
		t.Fatalf("products = %d, want 2", len(catalog.Products))
	}
	fan := catalog.Products[0]
	if fan.ID != "P1" || fan.FullName != "Quiet USB Desk Fan" || fan.BasePriceUSD.String() != "15.5" || fan.WeightKg != 0.4 {
		t.Errorf("unexpected first product: %+v", fan)
	}
	mug := catalog.Products[1]
	if mug.FullName != "Mug" || mug.Category != "Other" || mug.Unit != "pcs" || mug.BasePriceUSD.String() != "7.25" {
		t.Errorf("defaults not applied: %+v", mug)
	}

	if len(catalog.Suppliers) != 2 {
		t.Fatalf("suppliers = %d, want 2", len(catalog.Suppliers))
	}
	if s := catalog.Suppliers[0]; s.ID != "S1" || s.Rating != 4.5 || s.DeliveryTime != "10-12 days" || s.MinOrderValue.IntPart() != 300 {
		t.Errorf("unexpected first supplier: %+v", s)
	}
	if s := catalog.Suppliers[1]; s.ID != "S3" || s.Status != "Verified" || s.MinOrderValue.IntPart() != 1200 {
		t.Errorf("unexpected second supplier: %+v", s)
	}
	if catalog.Source != "catalog.xlsx" {
		t.Errorf("Source = %q", catalog.Source)
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 3 {
		t.Errorf("warnings = %d, want 3 (bad price, empty id, bad rating)", warnings)
	}
}

func TestParseCatalog_ShortHeaders(t *testing.T) {
	f := newCatalogWorkbook(t,
		[][]any{
			{"id", "name", "price"},
			{"P1", "Kettle", 30},
		},
		supplierSheet,
	)

	logger, _ := test.NewNullLogger()
	catalog, err := NewExcelParser(logger).ParseCatalog(context.Background(), saveWorkbook(t, f))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}
	if len(catalog.Products) != 1 || catalog.Products[0].Name != "Kettle" {
		t.Errorf("products = %+v", catalog.Products)
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	p := NewExcelParser(logger)

	t.Run("missing suppliers sheet", func(t *testing.T) {
		f := excelize.NewFile()
		if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
			t.Fatal(err)
		}
		writeRows(t, f, ProductsSheet, [][]any{{"id", "name", "price"}, {"P1", "Kettle", 30}})
		if _, err := p.ParseCatalog(context.Background(), saveWorkbook(t, f)); err == nil {
			t.Error("expected error for missing Suppliers sheet")
		}
	})

	t.Run("no valid products", func(t *testing.T) {
		f := newCatalogWorkbook(t, [][]any{{"id", "name", "price"}, {"P1", "Kettle", 0}}, supplierSheet)
		if _, err := p.ParseCatalog(context.Background(), saveWorkbook(t, f)); err == nil {
			t.Error("expected error when every product row is invalid")
		}
	})

	t.Run("not an excel file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.xlsx")
		if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := p.ParseCatalog(context.Background(), path); err == nil {
			t.Error("expected error for garbage input")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := p.ParseCatalog(context.Background(), filepath.Join(t.TempDir(), "none.xlsx")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "45.99", want: "45.99"},
		{in: "$1,250.50", want: "1250.5"},
		{in: "12 usd", want: "12"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePrice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.String() != tt.want {
			t.Errorf("parsePrice(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
