package telegram

import (
	"context"
	"errors"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
	"github.com/yourusername/supplier-research-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot           *tgbotapi.BotAPI
	messenger     repository.Messenger
	catalog       repository.CatalogRepository
	searchUseCase usecase.SearchUseCase
	maxProducts   int
	log           logrus.FieldLogger
	wg            sync.WaitGroup
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	bot *tgbotapi.BotAPI,
	messenger repository.Messenger,
	catalog repository.CatalogRepository,
	searchUseCase usecase.SearchUseCase,
	maxProducts int,
	log logrus.FieldLogger,
) *BotHandler {
	return &BotHandler{
		bot:           bot,
		messenger:     messenger,
		catalog:       catalog,
		searchUseCase: searchUseCase,
		maxProducts:   maxProducts,
		log:           log,
	}
}

// Start botni ishga tushirish. Kontekst tugaganda ishlayotgan so'rovlar kutiladi.
func (h *BotHandler) Start(ctx context.Context) error {
	h.log.Infof("🤖 Bot @%s started", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.log.Info("🛑 Stopping bot...")
			h.bot.StopReceivingUpdates()
			h.wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				h.wg.Wait()
				return nil
			}
			if update.Message == nil {
				continue
			}

			h.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer h.wg.Done()
				h.handleMessage(ctx, message)
			}(update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if message.Text != "" {
		h.handleSearch(ctx, newSearchRequest(message))
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start":
		h.sendMessage(ctx, chatID, welcomeMessage)
	case "help":
		h.sendMessage(ctx, chatID, helpMessage(h.maxProducts))
	case "examples":
		h.sendMessage(ctx, chatID, examplesMessage(h.catalog.ListProducts(ctx)))
	default:
		h.sendMessage(ctx, chatID, unknownCommandMessage)
	}
}

func (h *BotHandler) handleSearch(ctx context.Context, req entity.SearchRequest) {
	log := h.log.WithFields(logrus.Fields{
		"request_id": req.ID,
		"chat_id":    req.ChatID,
		"user":       req.Username,
	})
	log.WithField("text", req.Text).Info("📨 Search request received")

	if _, err := h.bot.Request(tgbotapi.NewChatAction(req.ChatID, tgbotapi.ChatTyping)); err != nil {
		log.WithError(err).Debug("typing action failed")
	}

	start := time.Now()
	result, err := h.searchUseCase.Search(ctx, req.ChatID, req.Text)
	switch {
	case errors.Is(err, usecase.ErrQueryTooShort),
		errors.Is(err, usecase.ErrNoValidNames),
		errors.Is(err, usecase.ErrNoProductsFound):
		log.WithError(err).Info("🔍 Search rejected")
	case err != nil:
		log.WithError(err).Error("❌ Search request failed")
	default:
		log.WithFields(logrus.Fields{
			"found":    len(result.Found),
			"duration": time.Since(start).Round(time.Millisecond),
		}).Info("✅ Search request completed")
	}
}

// sendMessage markdown xabar yuborish
func (h *BotHandler) sendMessage(ctx context.Context, chatID int64, text string) {
	if _, err := h.messenger.SendText(ctx, chatID, text); err != nil {
		h.log.WithError(err).WithField("chat_id", chatID).Warn("⚠️ Failed to send message")
	}
}

func newSearchRequest(message *tgbotapi.Message) entity.SearchRequest {
	req := entity.SearchRequest{
		ID:        uuid.NewString(),
		ChatID:    message.Chat.ID,
		Text:      message.Text,
		Timestamp: message.Time(),
	}
	if message.From != nil {
		req.UserID = message.From.ID
		req.Username = message.From.UserName
		if req.Username == "" {
			req.Username = message.From.FirstName
		}
	}
	return req
}
