package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

const (
	DetailSheet  = "Supplier Analysis"
	SummarySheet = "Summary"

	headerRow    = 3
	firstDataRow = 4

	detailWidthCap  = 50
	summaryWidthCap = 30

	createAttempts = 5
)

// DetailColumns batafsil varaqdagi ustunlar (tartib muhim)
var DetailColumns = []string{
	"No.", "Product Code", "Product Name", "Full Product Name", "Category", "Unit",
	"Doc Unit", "Base Price (USD)", "Supplier", "Supplier Country", "Supplier Rating",
	"Price USD", "Price RUB", "Delivery %", "Delivery RUB", "Storage %", "Storage RUB",
	"Additional Costs Name", "Additional Costs %", "Additional Costs RUB",
	"Final Price RUB", "Final Price USD", "Lead Time", "MOQ (USD)", "Warehouse Location",
	"Supplier Status", "Supplier Website", "Supplier Tax ID", "Product Weight (kg)",
	"Dimensions (cm)", "Year", "Quarter",
}

// SummaryColumns xulosa varag'i ustunlari
var SummaryColumns = []string{"Product", "Best Supplier", "Best Price (USD)", "Lead Time", "Rating"}

// pul va reyting formatlari qo'llanadigan ustunlar (1 dan boshlab)
var (
	detailMoneyColumns  = []int{8, 12, 13, 14, 15, 16, 17, 19, 20, 21, 22, 24}
	detailRatingColumns = []int{11}
)

// Settings hisobot parametrlari
type Settings struct {
	Dir                    string
	Prefix                 string
	MaxSuppliersPerProduct int
}

type excelReport struct {
	settings Settings
	now      func() time.Time
	suffix   func() string
	log      logrus.FieldLogger
}

// NewExcelReportBuilder yangi hisobot yaratuvchi
func NewExcelReportBuilder(settings Settings, log logrus.FieldLogger) repository.ReportBuilder {
	return newExcelReport(settings, time.Now, randomSuffix, log)
}

func newExcelReport(settings Settings, now func() time.Time, suffix func() string, log logrus.FieldLogger) *excelReport {
	return &excelReport{
		settings: settings,
		now:      now,
		suffix:   suffix,
		log:      log,
	}
}

// BuildReport ikki varaqli .xlsx yozadi va fayl yo'lini qaytaradi
func (r *excelReport) BuildReport(ctx context.Context, entries []entity.ProductOffers) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	generatedAt := r.now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DetailSheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	styles, err := newStyles(f)
	if err != nil {
		return "", err
	}
	if err := r.writeDetail(f, styles, entries, generatedAt); err != nil {
		return "", fmt.Errorf("failed to write %s sheet: %w", DetailSheet, err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return "", fmt.Errorf("failed to create %s sheet: %w", SummarySheet, err)
	}
	if err := r.writeSummary(f, styles, entries, generatedAt); err != nil {
		return "", fmt.Errorf("failed to write %s sheet: %w", SummarySheet, err)
	}

	path, err := r.save(f, generatedAt)
	if err != nil {
		return "", err
	}

	r.log.WithFields(logrus.Fields{
		"path":     path,
		"products": len(entries),
	}).Info("📊 Excel report generated")
	return path, nil
}

func (r *excelReport) writeDetail(f *excelize.File, s styles, entries []entity.ProductOffers, generatedAt time.Time) error {
	sheet := DetailSheet
	lastCol, _ := excelize.ColumnNumberToName(len(DetailColumns))
	title := fmt.Sprintf("Supplier Market Analysis - generated %s", generatedAt.Format("2006-01-02 15:04:05"))
	if err := writeTitle(f, sheet, title, lastCol, s.title); err != nil {
		return err
	}

	widths := newColumnWidths(DetailColumns)
	if err := writeHeader(f, sheet, DetailColumns, lastCol, s.header); err != nil {
		return err
	}

	row := firstDataRow
	year, quarter := generatedAt.Year(), (int(generatedAt.Month())-1)/3+1
	for _, e := range entries {
		offers := e.Offers
		if limit := r.settings.MaxSuppliersPerProduct; limit > 0 && len(offers) > limit {
			offers = offers[:limit]
		}

		for i, o := range offers {
			values := detailRow(i+1, e.Product, o, generatedAt, year, quarter)
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			widths.observe(values)
			row++
		}
		row++ // mahsulotlar orasida bo'sh qator
	}

	lastRow := row - 1
	if lastRow >= firstDataRow {
		if err := styleColumns(f, sheet, detailMoneyColumns, lastRow, s.money); err != nil {
			return err
		}
		if err := styleColumns(f, sheet, detailRatingColumns, lastRow, s.rating); err != nil {
			return err
		}
	}
	return widths.apply(f, sheet, detailWidthCap)
}

func detailRow(n int, p entity.Product, o entity.Offer, day time.Time, year, quarter int) []any {
	return []any{
		n,
		entity.ProductCode(p, o.Supplier, day),
		p.Name,
		p.FullName,
		p.Category,
		p.Unit,
		p.DocUnit,
		p.BasePriceUSD.InexactFloat64(),
		o.Supplier.Name,
		o.Supplier.Country,
		o.Supplier.Rating,
		o.PriceUSD.InexactFloat64(),
		o.PriceRUB.InexactFloat64(),
		o.DeliveryPercent.InexactFloat64(),
		o.DeliveryRUB.InexactFloat64(),
		o.StoragePercent.InexactFloat64(),
		o.StorageRUB.InexactFloat64(),
		o.AdditionalCostName,
		o.AdditionalPercent.InexactFloat64(),
		o.AdditionalRUB.InexactFloat64(),
		o.FinalPriceRUB.InexactFloat64(),
		o.FinalPriceUSD.InexactFloat64(),
		o.LeadTime,
		o.MOQ.InexactFloat64(),
		o.Supplier.WarehouseLocation,
		o.Supplier.Status,
		o.Supplier.URL,
		o.Supplier.TaxID,
		p.WeightKg,
		p.Dimensions,
		year,
		quarter,
	}
}

func (r *excelReport) writeSummary(f *excelize.File, s styles, entries []entity.ProductOffers, generatedAt time.Time) error {
	sheet := SummarySheet
	lastCol, _ := excelize.ColumnNumberToName(len(SummaryColumns))
	title := fmt.Sprintf("Best offer per product - %s", generatedAt.Format("2006-01-02 15:04"))
	if err := writeTitle(f, sheet, title, lastCol, s.title); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, SummaryColumns, lastCol, s.header); err != nil {
		return err
	}

	widths := newColumnWidths(SummaryColumns)
	row := firstDataRow
	for _, e := range entries {
		best, ok := bestOffer(e.Offers)
		if !ok {
			continue
		}
		values := []any{
			e.Product.Name,
			best.Supplier.Name,
			best.FinalPriceUSD.InexactFloat64(),
			best.LeadTime,
			best.Supplier.Rating,
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		widths.observe(values)
		row++
	}

	if lastRow := row - 1; lastRow >= firstDataRow {
		if err := styleColumns(f, sheet, []int{3}, lastRow, s.money); err != nil {
			return err
		}
		if err := styleColumns(f, sheet, []int{5}, lastRow, s.rating); err != nil {
			return err
		}
	}
	return widths.apply(f, sheet, summaryWidthCap)
}

// bestOffer eng arzon yakuniy USD narxli taklif
func bestOffer(offers []entity.Offer) (entity.Offer, bool) {
	if len(offers) == 0 {
		return entity.Offer{}, false
	}
	best := offers[0]
	for _, o := range offers[1:] {
		if o.FinalPriceUSD.LessThan(best.FinalPriceUSD) {
			best = o
		}
	}
	return best, true
}

// save faylni O_EXCL bilan yaratadi, to'qnashuv bo'lsa yangi suffix bilan qayta urinadi
func (r *excelReport) save(f *excelize.File, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(r.settings.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report dir: %w", err)
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		name := fmt.Sprintf("%s_%s_%s.xlsx", r.settings.Prefix, generatedAt.Format("20060102_150405"), r.suffix())
		path := filepath.Join(r.settings.Dir, name)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, os.ErrExist) {
			r.log.WithField("path", path).Debug("report name taken, retrying")
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create report file: %w", err)
		}

		if err := f.Write(file); err != nil {
			file.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write report: %w", err)
		}
		if err := file.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close report: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("failed to find a free report file name after %d attempts", createAttempts)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func writeTitle(f *excelize.File, sheet, title, lastCol string, style int) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastCol+"1", style)
}

func writeHeader(f *excelize.File, sheet string, columns []string, lastCol string, style int) error {
	values := make([]any, len(columns))
	for i, c := range columns {
		values[i] = c
	}
	if err := setRow(f, sheet, headerRow, values); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), style)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleColumns(f *excelize.File, sheet string, columns []int, lastRow, style int) error {
	for _, col := range columns {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("%s%d", name, firstDataRow), fmt.Sprintf("%s%d", name, lastRow), style); err != nil {
			return err
		}
	}
	return nil
}

type styles struct {
	title  int
	header int
	money  int
	rating int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, fmt.Errorf("failed to create title style: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	moneyFmt, ratingFmt := "#,##0.00", "0.0"
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return s, fmt.Errorf("failed to create money style: %w", err)
	}
	if s.rating, err = f.NewStyle(&excelize.Style{CustomNumFmt: &ratingFmt}); err != nil {
		return s, fmt.Errorf("failed to create rating style: %w", err)
	}
	return s, nil
}

// columnWidths ustunlardagi eng uzun qiymatni kuzatadi
type columnWidths []int

func newColumnWidths(header []string) columnWidths {
	w := make(columnWidths, len(header))
	for i, h := range header {
		w[i] = utf8.RuneCountInString(h)
	}
	return w
}

func (w columnWidths) observe(values []any) {
	for i, v := range values {
		if i >= len(w) {
			break
		}
		if n := utf8.RuneCountInString(fmt.Sprint(v)); n > w[i] {
			w[i] = n
		}
	}
}

func (w columnWidths) apply(f *excelize.File, sheet string, widthCap int) error {
	for i, n := range w {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(n+2, widthCap))); err != nil {
			return err
		}
	}
	return nil
}
