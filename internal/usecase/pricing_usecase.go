package usecase

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

// AdditionalCostNames qo'shimcha xarajat nomlari (faqat ko'rinish uchun)
var AdditionalCostNames = []string{
	"Customs clearance",
	"Insurance",
	"Packaging",
	"Documentation",
}

var (
	hundred         = decimal.NewFromInt(100)
	minMultiplier   = decimal.RequireFromString("0.85")
	multiplierSpan  = decimal.RequireFromString("0.35")
	deliveryNoise   = decimal.NewFromInt(1)
	additionalNoise = decimal.RequireFromString("0.5")
)

// RandomSource narx generatori uchun tasodifiy sonlar manbai.
// *rand.Rand bu interfeysni qanoatlantiradi.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource vaqt asosidagi seed bilan manba
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// PricingSettings narx hisoblash parametrlari
type PricingSettings struct {
	ExchangeRate      float64 // 1 USD = N RUB
	DeliveryPercent   float64
	StoragePercent    float64
	AdditionalPercent float64
}

// PricingUseCase har bir yetkazib beruvchi uchun taklif generatsiya qilish
type PricingUseCase interface {
	// PriceProduct har bir yetkazib beruvchi uchun bitta taklif, tartib saqlanadi
	PriceProduct(product entity.Product, suppliers []entity.Supplier) []entity.Offer
}

type pricingUseCase struct {
	mu         sync.Mutex // rand.Rand goroutine-safe emas
	rnd        RandomSource
	rate       decimal.Decimal
	delivery   decimal.Decimal
	storage    decimal.Decimal
	additional decimal.Decimal
}

// NewPricingUseCase yangi PricingUseCase yaratish
func NewPricingUseCase(settings PricingSettings, rnd RandomSource) PricingUseCase {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &pricingUseCase{
		rnd:        rnd,
		rate:       decimal.NewFromFloat(settings.ExchangeRate),
		delivery:   decimal.NewFromFloat(settings.DeliveryPercent),
		storage:    decimal.NewFromFloat(settings.StoragePercent),
		additional: decimal.NewFromFloat(settings.AdditionalPercent),
	}
}

// PriceProduct mahsulot uchun takliflar
func (u *pricingUseCase) PriceProduct(product entity.Product, suppliers []entity.Supplier) []entity.Offer {
	u.mu.Lock()
	defer u.mu.Unlock()

	offers := make([]entity.Offer, 0, len(suppliers))
	for _, s := range suppliers {
		offers = append(offers, u.priceOffer(product, s))
	}
	return offers
}

// priceOffer bitta taklif. Barcha qiymatlar 2 xonagacha yaxlitlanadi,
// yakuniy RUB narx esa yaxlitlangan qismlarning aniq yig'indisi.
func (u *pricingUseCase) priceOffer(product entity.Product, supplier entity.Supplier) entity.Offer {
	multiplier := minMultiplier.Add(multiplierSpan.Mul(decimal.NewFromFloat(u.rnd.Float64())))
	priceUSD := round2(product.BasePriceUSD.Mul(multiplier))
	priceRUB := round2(priceUSD.Mul(u.rate))

	deliveryPct := percent(u.delivery.Add(u.noise(deliveryNoise)))
	storagePct := percent(u.storage)
	additionalPct := percent(u.additional.Add(u.noise(additionalNoise)))

	deliveryRUB := share(priceRUB, deliveryPct)
	storageRUB := share(priceRUB, storagePct)
	additionalRUB := share(priceRUB, additionalPct)

	finalRUB := priceRUB.Add(deliveryRUB).Add(storageRUB).Add(additionalRUB)

	return entity.Offer{
		Supplier:           supplier,
		PriceUSD:           priceUSD,
		PriceRUB:           priceRUB,
		DeliveryPercent:    deliveryPct,
		DeliveryRUB:        deliveryRUB,
		StoragePercent:     storagePct,
		StorageRUB:         storageRUB,
		AdditionalCostName: AdditionalCostNames[u.rnd.Intn(len(AdditionalCostNames))],
		AdditionalPercent:  additionalPct,
		AdditionalRUB:      additionalRUB,
		FinalPriceRUB:      finalRUB,
		FinalPriceUSD:      round2(finalRUB.Div(u.rate)),
		MOQ:                supplier.MinOrderValue,
		LeadTime:           supplier.DeliveryTime,
	}
}

// noise [-width, width) oralig'ida tekis taqsimlangan shovqin
func (u *pricingUseCase) noise(width decimal.Decimal) decimal.Decimal {
	r := decimal.NewFromFloat(u.rnd.Float64()*2 - 1)
	return width.Mul(r)
}

// RankOffers takliflarni yakuniy USD narx bo'yicha o'sish tartibida saralaydi (nusxa)
func RankOffers(offers []entity.Offer) []entity.Offer {
	ranked := append([]entity.Offer(nil), offers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalPriceUSD.LessThan(ranked[j].FinalPriceUSD)
	})
	return ranked
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percent manfiy bo'lmagan, yaxlitlangan foiz
func percent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return round2(d)
}

func share(amount, pct decimal.Decimal) decimal.Decimal {
	return round2(amount.Mul(pct).Div(hundred))
}
