package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

const (
	promptSuppliers = 5
	topOffers       = 3
)

const systemPrompt = `You are an expert in international trade and supplier analysis.
Your task is to analyze suppliers of products for e-commerce and provide actionable insights.

Evaluate every supplier on:
1. Price competitiveness
2. Lead time and reliability
3. Supplier reputation (rating)
4. Minimum order requirements
5. Geographic advantages and drawbacks
6. Overall risk

Provide recommendations in a structured format.`

// ErrNoOffers mahsulot uchun taklif yo'q
var ErrNoOffers = errors.New("no offers to analyze")

// AnalysisUseCase takliflar bo'yicha AI tavsiyasi
type AnalysisUseCase interface {
	// Analyze hech qachon xato qaytarmaydi: muammo bo'lsa natija Degraded bo'ladi
	Analyze(ctx context.Context, product entity.Product, offers []entity.Offer) entity.AnalysisResult
	// AnalyzeAll ketma-ket, har bir element uchun bitta natija
	AnalyzeAll(ctx context.Context, entries []entity.ProductOffers) []entity.AnalysisResult
}

type analysisUseCase struct {
	aiRepo repository.AIRepository
	delay  time.Duration
	log    logrus.FieldLogger
}

// NewAnalysisUseCase yangi AnalysisUseCase yaratish
func NewAnalysisUseCase(aiRepo repository.AIRepository, delay time.Duration, log logrus.FieldLogger) AnalysisUseCase {
	return &analysisUseCase{
		aiRepo: aiRepo,
		delay:  delay,
		log:    log,
	}
}

// Analyze bitta mahsulot uchun tahlil
func (u *analysisUseCase) Analyze(ctx context.Context, product entity.Product, offers []entity.Offer) entity.AnalysisResult {
	if len(offers) == 0 {
		return u.degraded(product.Name, ErrNoOffers)
	}

	ranked := RankOffers(offers)
	text, err := u.aiRepo.GenerateResponse(ctx, systemPrompt, buildUserPrompt(product, ranked))
	if err != nil {
		return u.degraded(product.Name, err)
	}

	stats := calculateStatistics(ranked)
	return entity.AnalysisResult{
		ProductName: product.Name,
		Analysis:    text,
		Status:      entity.AnalysisOK,
		Stats:       &stats,
		TopOffers:   ranked[:min(topOffers, len(ranked))],
	}
}

// AnalyzeAll oldingi javob kelgandan keyin delay kutiladi; kontekst bekor
// qilinsa qolgan mahsulotlar Degraded bo'ladi
func (u *analysisUseCase) AnalyzeAll(ctx context.Context, entries []entity.ProductOffers) []entity.AnalysisResult {
	results := make([]entity.AnalysisResult, 0, len(entries))
	for i, e := range entries {
		if i > 0 {
			if err := sleep(ctx, u.delay); err != nil {
				results = append(results, u.degraded(e.Product.Name, err))
				continue
			}
		}
		results = append(results, u.Analyze(ctx, e.Product, e.Offers))
	}
	return results
}

func (u *analysisUseCase) degraded(productName string, err error) entity.AnalysisResult {
	u.log.WithError(err).WithField("product", productName).Warn("⚠️ AI analysis unavailable, using placeholder")
	return entity.AnalysisResult{
		ProductName: productName,
		Analysis:    AnalysisUnavailable,
		Status:      entity.AnalysisDegraded,
		Err:         err,
	}
}

func buildUserPrompt(product entity.Product, ranked []entity.Offer) string {
	var sb strings.Builder
	sb.WriteString("Please analyze the suppliers for the following product:\n\n")
	fmt.Fprintf(&sb, "PRODUCT: %s\n", product.Name)
	fmt.Fprintf(&sb, "CATEGORY: %s\n", product.Category)
	fmt.Fprintf(&sb, "BASE PRICE: $%s\n\n", product.BasePriceUSD.StringFixed(2))
	sb.WriteString("TOP SUPPLIERS:\n")
	for i, line := range supplierLines(ranked) {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, line)
	}
	sb.WriteString("\nPlease provide:\n" +
		"1. BEST VALUE: Which supplier offers the best value?\n" +
		"2. BUDGET PICK: The best option for a low budget?\n" +
		"3. PREMIUM PICK: The best for quality and reliability?\n" +
		"4. RISK ASSESSMENT: Are there any red flags?\n" +
		"5. RECOMMENDATION: Overall recommendation with reasoning.\n\n" +
		"Format the answer clearly with bullet points and emoji.")
	return sb.String()
}

// supplierLines top 5 taklif: "Name (Country): $final, Rating: r/5, Lead Time: t, MOQ: $m"
func supplierLines(ranked []entity.Offer) []string {
	n := min(promptSuppliers, len(ranked))
	lines := make([]string, 0, n)
	for _, o := range ranked[:n] {
		lines = append(lines, fmt.Sprintf("%s (%s): $%s, Rating: %s/5, Lead Time: %s, MOQ: $%s",
			o.Supplier.Name,
			o.Supplier.Country,
			o.FinalPriceUSD.StringFixed(2),
			decimal.NewFromFloat(o.Supplier.Rating).String(),
			o.LeadTime,
			o.MOQ.String(),
		))
	}
	return lines
}

// calculateStatistics ranked bo'sh bo'lmasligi kerak
func calculateStatistics(ranked []entity.Offer) entity.Statistics {
	best, worst := ranked[0], ranked[len(ranked)-1]

	top := ranked[:min(promptSuppliers, len(ranked))]
	var ratingSum float64
	for _, o := range top {
		ratingSum += o.Supplier.Rating
	}

	return entity.Statistics{
		TotalAnalyzed: len(ranked),
		MinPriceUSD:   best.FinalPriceUSD,
		MaxPriceUSD:   worst.FinalPriceUSD,
		PriceRange:    fmt.Sprintf("$%s - $%s", best.FinalPriceUSD.StringFixed(2), worst.FinalPriceUSD.StringFixed(2)),
		AverageRating: ratingSum / float64(len(top)),
		BestSupplier:  best.Supplier.Name,
		BestPriceUSD:  best.FinalPriceUSD,
		WorstSupplier: worst.Supplier.Name,
		WorstPriceUSD: worst.FinalPriceUSD,
	}
}

// FormatAnalysis natijani Telegram Markdown blokiga aylantirish
func FormatAnalysis(result entity.AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 *%s - SUPPLIER ANALYSIS*\n\n", strings.ToUpper(result.ProductName))
	sb.WriteString(result.Analysis)

	if s := result.Stats; s != nil && !result.Degraded() {
		sb.WriteString("\n\n📊 *QUICK STATS:*\n")
		fmt.Fprintf(&sb, "• Suppliers analyzed: %d\n", s.TotalAnalyzed)
		fmt.Fprintf(&sb, "• Price range: %s\n", s.PriceRange)
		fmt.Fprintf(&sb, "• Average rating: %.1f/5\n", s.AverageRating)
		fmt.Fprintf(&sb, "• Best price: $%s (%s)", s.BestPriceUSD.StringFixed(2), s.BestSupplier)
	}

	sb.WriteString("\n\n💡 *NEXT STEPS:*\n" +
		"1. Contact the top 3 suppliers for samples\n" +
		"2. Negotiate better MOQ terms\n" +
		"3. Request product certificates\n" +
		"4. Verify shipping costs")
	return sb.String()
}
