package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

var (
	// ErrQueryTooShort matn MinSearchTextLength dan qisqa
	ErrQueryTooShort = errors.New("search text is too short")
	// ErrNoValidNames vergullardan keyin bitta ham nom qolmadi
	ErrNoValidNames = errors.New("no valid product names")
	// ErrNoProductsFound katalogda hech narsa topilmadi
	ErrNoProductsFound = errors.New("no products found")
)

// SearchSettings qidiruv oqimi parametrlari
type SearchSettings struct {
	MinSearchTextLength   int
	MaxProductsPerRequest int
	ChunkSize             int
	MessageDelay          time.Duration // bo'laklar orasida
	ProductDelay          time.Duration // mahsulotlar orasida
}

// SearchResult bajarilgan qidiruv haqida ma'lumot
type SearchResult struct {
	Names      []string
	Found      []entity.Product
	NotFound   []string
	Analyses   []entity.AnalysisResult
	ReportPath string // yetkazilgandan keyin o'chiriladi
}

// SearchUseCase foydalanuvchi so'rovini to'liq qayta ishlash
type SearchUseCase interface {
	Search(ctx context.Context, chatID int64, text string) (*SearchResult, error)
}

type searchUseCase struct {
	catalog   repository.CatalogRepository
	pricing   PricingUseCase
	analysis  AnalysisUseCase
	reports   repository.ReportBuilder
	messenger repository.Messenger
	settings  SearchSettings
	log       logrus.FieldLogger
}

// NewSearchUseCase yangi SearchUseCase yaratish
func NewSearchUseCase(
	catalog repository.CatalogRepository,
	pricing PricingUseCase,
	analysis AnalysisUseCase,
	reports repository.ReportBuilder,
	messenger repository.Messenger,
	settings SearchSettings,
	log logrus.FieldLogger,
) SearchUseCase {
	return &searchUseCase{
		catalog:   catalog,
		pricing:   pricing,
		analysis:  analysis,
		reports:   reports,
		messenger: messenger,
		settings:  settings,
		log:       log,
	}
}

// Search so'rovni ketma-ket qayta ishlaydi. Qidiruvdan keyingi har qanday
// xato foydalanuvchiga bitta umumiy xabar sifatida ko'rsatiladi.
func (u *searchUseCase) Search(ctx context.Context, chatID int64, text string) (*SearchResult, error) {
	log := u.log.WithField("chat_id", chatID)

	query := strings.TrimSpace(text)
	if utf8.RuneCountInString(query) < u.settings.MinSearchTextLength {
		u.send(ctx, log, chatID, fmt.Sprintf(MsgQueryTooShort, u.settings.MinSearchTextLength))
		return nil, ErrQueryTooShort
	}

	u.send(ctx, log, chatID, fmt.Sprintf(MsgSearching, EscapeMarkdown(query)))

	names := ParseProductNames(query, u.settings.MaxProductsPerRequest)
	if len(names) == 0 {
		u.send(ctx, log, chatID, MsgNoValidNames)
		return nil, ErrNoValidNames
	}

	result := &SearchResult{Names: names}
	for _, name := range names {
		if p, ok := u.catalog.FindProduct(ctx, name); ok {
			result.Found = append(result.Found, p)
		} else {
			result.NotFound = append(result.NotFound, name)
		}
	}
	log.WithFields(logrus.Fields{
		"found":     len(result.Found),
		"not_found": len(result.NotFound),
	}).Info("🔎 Catalog lookup finished")

	if len(result.Found) == 0 {
		u.send(ctx, log, chatID, MsgNoProducts)
		return result, ErrNoProductsFound
	}

	statusID, err := u.messenger.SendText(ctx, chatID, formatSearchStatus(result))
	if err != nil {
		err = fmt.Errorf("failed to send search status: %w", err)
		log.WithError(err).Error("❌ Search failed")
		u.fail(ctx, log, chatID, 0)
		return result, err
	}

	if err := u.process(ctx, log, chatID, statusID, result); err != nil {
		log.WithError(err).Error("❌ Search failed")
		u.fail(ctx, log, chatID, statusID)
		return result, err
	}
	return result, nil
}

func (u *searchUseCase) process(ctx context.Context, log logrus.FieldLogger, chatID int64, statusID int, result *SearchResult) error {
	suppliers := u.catalog.ListSuppliers(ctx)
	entries := make([]entity.ProductOffers, 0, len(result.Found))
	for _, p := range result.Found {
		entries = append(entries, entity.ProductOffers{
			Product: p,
			Offers:  RankOffers(u.pricing.PriceProduct(p, suppliers)),
		})
	}

	u.edit(ctx, log, chatID, statusID, MsgGeneratingReport)
	path, err := u.reports.BuildReport(ctx, entries)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	result.ReportPath = path
	defer u.removeReport(log, path)

	u.edit(ctx, log, chatID, statusID, MsgAnalyzing)
	result.Analyses = u.analysis.AnalyzeAll(ctx, entries)

	if err := u.deliver(ctx, chatID, result.Analyses, path); err != nil {
		return err
	}

	if err := u.messenger.DeleteMessage(ctx, chatID, statusID); err != nil {
		log.WithError(err).Warn("⚠️ Failed to delete status message")
	}
	log.WithField("products", len(entries)).Info("✅ Search results delivered")
	return nil
}

func (u *searchUseCase) deliver(ctx context.Context, chatID int64, analyses []entity.AnalysisResult, reportPath string) error {
	if _, err := u.messenger.SendText(ctx, chatID, MsgResultsHeader); err != nil {
		return fmt.Errorf("failed to send results header: %w", err)
	}

	for i, a := range analyses {
		if i > 0 {
			if err := sleep(ctx, u.settings.ProductDelay); err != nil {
				return err
			}
		}

		chunks := ChunkText(FormatAnalysis(a), u.settings.ChunkSize)
		for j, chunk := range chunks {
			if j > 0 {
				if err := sleep(ctx, u.settings.MessageDelay); err != nil {
					return err
				}
			}
			if _, err := u.messenger.SendText(ctx, chatID, chunk); err != nil {
				return fmt.Errorf("failed to send analysis of %s: %w", a.ProductName, err)
			}
		}
	}

	if _, err := u.messenger.SendText(ctx, chatID, MsgPreparingFile); err != nil {
		return fmt.Errorf("failed to send report notice: %w", err)
	}
	if err := u.messenger.SendDocument(ctx, chatID, reportPath, ReportFileName, ReportCaption); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	if _, err := u.messenger.SendText(ctx, chatID, MsgAnalysisComplete); err != nil {
		return fmt.Errorf("failed to send completion message: %w", err)
	}
	return nil
}

// send javob kutilmaydigan xabarlar uchun; xato faqat log qilinadi
func (u *searchUseCase) send(ctx context.Context, log logrus.FieldLogger, chatID int64, text string) {
	if _, err := u.messenger.SendText(ctx, chatID, text); err != nil {
		log.WithError(err).Warn("⚠️ Failed to send message")
	}
}

func (u *searchUseCase) edit(ctx context.Context, log logrus.FieldLogger, chatID int64, messageID int, text string) {
	if err := u.messenger.EditText(ctx, chatID, messageID, text); err != nil {
		log.WithError(err).Warn("⚠️ Failed to update status message")
	}
}

// fail umumiy xato xabari: avval status xabarini tahrirlash, bo'lmasa yangi xabar
func (u *searchUseCase) fail(ctx context.Context, log logrus.FieldLogger, chatID int64, statusID int) {
	ctx = context.WithoutCancel(ctx)
	if statusID > 0 {
		if err := u.messenger.EditText(ctx, chatID, statusID, MsgProcessingError); err == nil {
			return
		}
	}
	u.send(ctx, log, chatID, MsgProcessingError)
}

func (u *searchUseCase) removeReport(log logrus.FieldLogger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).WithField("path", path).Warn("⚠️ Failed to remove report file")
	}
}

func formatSearchStatus(r *SearchResult) string {
	status := fmt.Sprintf(MsgSearchStatus, len(r.Found), len(r.NotFound))
	if len(r.NotFound) > 0 {
		status += fmt.Sprintf(MsgNotFoundList, EscapeMarkdown(strings.Join(r.NotFound, ", ")))
	}
	return status
}

// ParseProductNames vergul bo'yicha ajratadi, bo'shlarni tashlaydi, limit gacha qisqartiradi
func ParseProductNames(text string, limit int) []string {
	var names []string
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
		if limit > 0 && len(names) == limit {
			break
		}
	}
	return names
}

// ChunkText matnni size runedan oshmaydigan bo'laklarga bo'ladi.
// Iloji bo'lsa bo'lak qator oxirida kesiladi.
func ChunkText(text string, size int) []string {
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for len(runes) > size {
		cut := size
		for i := size - 1; i >= size/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
