package entity

import "github.com/shopspring/decimal"

// AnalysisStatus AI tahlil natijasi holati
type AnalysisStatus int

const (
	// AnalysisOK model javobi olindi
	AnalysisOK AnalysisStatus = iota
	// AnalysisDegraded model javobi yo'q, o'rniga placeholder matn
	AnalysisDegraded
)

func (s AnalysisStatus) String() string {
	switch s {
	case AnalysisOK:
		return "ok"
	case AnalysisDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Statistics takliflar bo'yicha lokal hisoblangan statistika
type Statistics struct {
	TotalAnalyzed int
	MinPriceUSD   decimal.Decimal
	MaxPriceUSD   decimal.Decimal
	PriceRange    string
	AverageRating float64 // top 5 bo'yicha
	BestSupplier  string
	BestPriceUSD  decimal.Decimal
	WorstSupplier string
	WorstPriceUSD decimal.Decimal
}

// AnalysisResult bitta mahsulot uchun tavsiya
type AnalysisResult struct {
	ProductName string
	Analysis    string
	Status      AnalysisStatus
	Err         error // faqat Degraded holatda
	Stats       *Statistics
	TopOffers   []Offer
}

// Degraded natija placeholder ekanligini bildiradi
func (r AnalysisResult) Degraded() bool {
	return r.Status == AnalysisDegraded
}
