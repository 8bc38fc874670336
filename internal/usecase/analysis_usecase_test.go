package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/storage"
)

func offer(name, country string, rating float64, finalUSD string) entity.Offer {
	return entity.Offer{
		Supplier:      entity.Supplier{Name: name, Country: country, Rating: rating},
		FinalPriceUSD: decimal.RequireFromString(finalUSD),
		MOQ:           decimal.NewFromInt(500),
		LeadTime:      "7-10 days",
	}
}

func TestAnalyze_OK(t *testing.T) {
	ai := &fakeAI{reply: "Go with Alpha."}
	logger, _ := test.NewNullLogger()
	uc := NewAnalysisUseCase(ai, 0, logger)

	product := entity.Product{Name: "Desk Lamp", Category: "Home", BasePriceUSD: decimal.NewFromInt(20)}
	offers := []entity.Offer{
		offer("Gamma", "India", 3.0, "30.10"),
		offer("Alpha", "China", 5.0, "21.5"),
		offer("Beta", "Germany", 4.0, "25"),
		offer("Delta", "USA", 4.0, "40"),
		offer("Eps", "UAE", 4.0, "33"),
		offer("Zeta", "Brazil", 1.0, "50"),
	}

	res := uc.Analyze(context.Background(), product, offers)
	if res.Degraded() || res.Err != nil || res.Analysis != "Go with Alpha." {
		t.Fatalf("unexpected result: %+v", res)
	}

	s := res.Stats
	if s == nil {
		t.Fatal("Stats is nil")
	}
	if s.TotalAnalyzed != 6 || s.BestSupplier != "Alpha" || s.WorstSupplier != "Zeta" {
		t.Errorf("stats = %+v", s)
	}
	if s.PriceRange != "$21.50 - $50.00" {
		t.Errorf("PriceRange = %q", s.PriceRange)
	}
	// top 5: Alpha 5, Beta 4, Gamma 3, Eps 4, Delta 4
	if s.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", s.AverageRating)
	}
	if len(res.TopOffers) != 3 || res.TopOffers[0].Supplier.Name != "Alpha" || res.TopOffers[2].Supplier.Name != "Gamma" {
		t.Errorf("TopOffers = %+v", res.TopOffers)
	}

	prompt := ai.prompts[0]
	for _, want := range []string{
		"PRODUCT: Desk Lamp",
		"CATEGORY: Home",
		"BASE PRICE: $20.00",
		"1. Alpha (China): $21.50, Rating: 5/5, Lead Time: 7-10 days, MOQ: $500",
		"5. Delta (USA): $40.00",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Zeta") {
		t.Error("prompt should list only the top 5 offers")
	}
}

func TestAnalyze_AverageRatingFewOffers(t *testing.T) {
	logger, _ := test.NewNullLogger()
	uc := NewAnalysisUseCase(&fakeAI{}, 0, logger)

	res := uc.Analyze(context.Background(), entity.Product{Name: "Mug"}, []entity.Offer{
		offer("A", "China", 4.0, "2"),
		offer("B", "India", 3.0, "3"),
	})
	if res.Stats == nil || res.Stats.AverageRating != 3.5 {
		t.Errorf("AverageRating = %+v, want 3.5", res.Stats)
	}
}

func TestAnalyze_Degraded(t *testing.T) {
	tests := []struct {
		name   string
		ai     *fakeAI
		offers []entity.Offer
	}{
		{name: "transport error", ai: &fakeAI{failOn: "Mug", err: errTransport}, offers: []entity.Offer{offer("A", "China", 4, "2")}},
		{name: "no offers", ai: &fakeAI{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			res := NewAnalysisUseCase(tt.ai, 0, logger).Analyze(context.Background(), entity.Product{Name: "Mug"}, tt.offers)

			if !res.Degraded() || res.Analysis != AnalysisUnavailable || res.Err == nil {
				t.Errorf("result = %+v, want degraded", res)
			}
			if res.Stats != nil || len(res.TopOffers) != 0 {
				t.Errorf("degraded result must not carry stats: %+v", res)
			}
			if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel || e.Data["product"] != "Mug" {
				t.Errorf("expected warning log, got %+v", e)
			}
		})
	}
}

func TestAnalyzeAll_ContinuesAfterFailure(t *testing.T) {
	ai := &fakeAI{failOn: "Smart Watch", err: errTransport}
	logger, _ := test.NewNullLogger()
	uc := NewAnalysisUseCase(ai, 10*time.Millisecond, logger)

	catalog := storage.NewDefaultCatalogRepository()
	pricing := NewPricingUseCase(defaultPricing, rand.New(rand.NewSource(1)))
	suppliers := catalog.ListSuppliers(context.Background())

	var entries []entity.ProductOffers
	for _, name := range []string{"Wireless Earbuds", "Smart Watch", "Yoga Mat"} {
		p, ok := catalog.FindProduct(context.Background(), name)
		if !ok {
			t.Fatalf("%s not in catalog", name)
		}
		entries = append(entries, entity.ProductOffers{Product: p, Offers: RankOffers(pricing.PriceProduct(p, suppliers))})
	}

	start := time.Now()
	results := uc.AnalyzeAll(context.Background(), entries)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if time.Since(start) < 18*time.Millisecond {
		t.Errorf("calls were not paced: %v", time.Since(start))
	}

	for i, want := range []bool{false, true, false} {
		if results[i].ProductName != entries[i].Product.Name {
			t.Errorf("result %d product = %q", i, results[i].ProductName)
		}
		if results[i].Degraded() != want {
			t.Errorf("result %d degraded = %v, want %v", i, results[i].Degraded(), want)
		}
	}
	if !errors.Is(results[1].Err, errTransport) || results[1].Stats != nil {
		t.Errorf("degraded result = %+v", results[1])
	}
	if results[2].Stats == nil || results[2].Stats.TotalAnalyzed != 10 {
		t.Errorf("batch should continue after failure: %+v", results[2])
	}
}

// slowAI har chaqiruvda latency kutadi va boshlanish/tugash vaqtini yozadi
type slowAI struct {
	latency time.Duration
	starts  []time.Time
	ends    []time.Time
}

func (s *slowAI) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.starts = append(s.starts, time.Now())
	time.Sleep(s.latency)
	s.ends = append(s.ends, time.Now())
	return "ok", nil
}

func (s *slowAI) Close() error { return nil }

func TestAnalyzeAll_PausesAfterSlowCall(t *testing.T) {
	const delay = 50 * time.Millisecond
	ai := &slowAI{latency: 80 * time.Millisecond}
	logger, _ := test.NewNullLogger()
	uc := NewAnalysisUseCase(ai, delay, logger)

	entries := []entity.ProductOffers{
		{Product: entity.Product{Name: "A"}, Offers: []entity.Offer{offer("S", "China", 4, "1")}},
		{Product: entity.Product{Name: "B"}, Offers: []entity.Offer{offer("S", "China", 4, "1")}},
		{Product: entity.Product{Name: "C"}, Offers: []entity.Offer{offer("S", "China", 4, "1")}},
	}
	results := uc.AnalyzeAll(context.Background(), entries)
	if len(results) != 3 || len(ai.starts) != 3 {
		t.Fatalf("results = %d, calls = %d", len(results), len(ai.starts))
	}

	for i := 1; i < len(ai.starts); i++ {
		if gap := ai.starts[i].Sub(ai.ends[i-1]); gap < delay {
			t.Errorf("gap before call %d = %v, want at least %v", i+1, gap, delay)
		}
	}
}

func TestAnalyzeAll_Cancelled(t *testing.T) {
	ai := &fakeAI{}
	logger, _ := test.NewNullLogger()
	uc := NewAnalysisUseCase(ai, time.Hour, logger)

	entries := []entity.ProductOffers{
		{Product: entity.Product{Name: "A"}, Offers: []entity.Offer{offer("S", "China", 4, "1")}},
		{Product: entity.Product{Name: "B"}, Offers: []entity.Offer{offer("S", "China", 4, "1")}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	results := uc.AnalyzeAll(ctx, entries)

	if len(results) != 2 || results[0].Degraded() || !results[1].Degraded() {
		t.Fatalf("results = %+v", results)
	}
	if ai.calls() != 1 {
		t.Errorf("AI calls = %d, want 1", ai.calls())
	}
}

func TestFormatAnalysis(t *testing.T) {
	ok := entity.AnalysisResult{
		ProductName: "Yoga Mat",
		Analysis:    "Pick Alpha.",
		Status:      entity.AnalysisOK,
		Stats: &entity.Statistics{
			TotalAnalyzed: 10,
			PriceRange:    "$20.10 - $30.00",
			AverageRating: 4.26,
			BestSupplier:  "Alpha",
			BestPriceUSD:  decimal.RequireFromString("20.1"),
		},
	}
	text := FormatAnalysis(ok)
	for _, want := range []string{"YOGA MAT - SUPPLIER ANALYSIS", "Pick Alpha.", "Suppliers analyzed: 10", "Price range: $20.10 - $30.00", "Average rating: 4.3/5", "Best price: $20.10 (Alpha)", "NEXT STEPS"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatAnalysis() missing %q:\n%s", want, text)
		}
	}

	degraded := entity.AnalysisResult{ProductName: "Mug", Analysis: AnalysisUnavailable, Status: entity.AnalysisDegraded, Err: errTransport}
	text = FormatAnalysis(degraded)
	if !strings.Contains(text, AnalysisUnavailable) || strings.Contains(text, "QUICK STATS") {
		t.Errorf("degraded FormatAnalysis() = %q", text)
	}
}
