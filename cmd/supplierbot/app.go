package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/yourusername/supplier-research-bot/config"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/ai"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/parser"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/report"
	"github.com/yourusername/supplier-research-bot/internal/infrastructure/storage"
	"github.com/yourusername/supplier-research-bot/internal/logger"
	"github.com/yourusername/supplier-research-bot/internal/usecase"
)

// application buyruqlar uchun umumiy komponentlar
type application struct {
	cfg     *config.Config
	log     *logrus.Logger
	catalog repository.CatalogRepository
	closers []func() error
}

// bootstrap konfiguratsiya, logger va katalogni tayyorlash
func bootstrap(c *cli.Context) (*application, error) {
	cfg, err := config.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	log, closeLog, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	a := &application{cfg: cfg, log: log, closers: []func() error{closeLog}}

	a.catalog, err = loadCatalog(c.Context, cfg.Catalog.File, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// loadCatalog fayl berilgan bo'lsa workbook dan, aks holda ichki jadvallardan
func loadCatalog(ctx context.Context, path string, log logrus.FieldLogger) (repository.CatalogRepository, error) {
	if path == "" {
		log.Debug("📦 Using built-in catalog")
		return storage.NewDefaultCatalogRepository(), nil
	}

	catalog, err := parser.NewExcelParser(log).ParseCatalog(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return storage.NewMemoryCatalogRepository(catalog.Products, catalog.Suppliers), nil
}

// searchUseCase qidiruv oqimini berilgan messenger bilan yig'ish
func (a *application) searchUseCase(ctx context.Context, messenger repository.Messenger) (usecase.SearchUseCase, error) {
	aiClient, err := ai.NewClient(ctx, a.cfg.LLM, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	a.closers = append(a.closers, aiClient.Close)
	a.log.WithFields(logrus.Fields{
		"provider": a.cfg.LLM.Provider,
		"model":    a.cfg.LLM.Model,
	}).Info("🧠 AI client ready")

	pricing := usecase.NewPricingUseCase(usecase.PricingSettings{
		ExchangeRate:      a.cfg.Pricing.ExchangeRate,
		DeliveryPercent:   a.cfg.Pricing.DeliveryPercent,
		StoragePercent:    a.cfg.Pricing.StoragePercent,
		AdditionalPercent: a.cfg.Pricing.AdditionalPercent,
	}, nil)

	reports := report.NewExcelReportBuilder(report.Settings{
		Dir:                    a.cfg.Report.Dir,
		Prefix:                 a.cfg.Report.Prefix,
		MaxSuppliersPerProduct: a.cfg.Search.MaxSuppliersPerProduct,
	}, a.log)

	analysis := usecase.NewAnalysisUseCase(aiClient, a.cfg.Search.AnalysisDelay, a.log)

	return usecase.NewSearchUseCase(a.catalog, pricing, analysis, reports, messenger, usecase.SearchSettings{
		MinSearchTextLength:   a.cfg.Search.MinSearchTextLength,
		MaxProductsPerRequest: a.cfg.Search.MaxProductsPerRequest,
		ChunkSize:             a.cfg.Search.ChunkSize,
		MessageDelay:          a.cfg.Search.MessageDelay,
		ProductDelay:          a.cfg.Search.ProductDelay,
	}, a.log), nil
}

// Close resurslarni teskari tartibda yopish
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.WithError(err).Warn("⚠️ Close failed")
		}
	}
}
