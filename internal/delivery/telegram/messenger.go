package telegram

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

// botAPI *tgbotapi.BotAPI ning bizga kerakli qismi
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type botMessenger struct {
	bot botAPI
	log logrus.FieldLogger
}

// NewMessenger Telegram orqali xabar yuboruvchi
func NewMessenger(bot botAPI, log logrus.FieldLogger) repository.Messenger {
	return &botMessenger{bot: bot, log: log}
}

// SendText markdown formatda yuborish; Telegram formatni rad etsa oddiy matn
func (m *botMessenger) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sent, err := m.bot.Send(msg)
	if err != nil && isParseError(err) {
		m.log.WithError(err).WithField("chat_id", chatID).Debug("markdown rejected, sending plain text")
		msg.ParseMode = ""
		sent, err = m.bot.Send(msg)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	return sent.MessageID, nil
}

// EditText xabarni tahrirlash
func (m *botMessenger) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	_, err := m.bot.Request(edit)
	if err != nil && isParseError(err) {
		edit.ParseMode = ""
		_, err = m.bot.Request(edit)
	}
	if err != nil && !isNotModified(err) {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

func (m *botMessenger) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// SendDocument faylni hujjat sifatida yuborish
func (m *botMessenger) SendDocument(ctx context.Context, chatID int64, path, filename, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{Name: filename, Reader: file})
	doc.Caption = caption
	if _, err := m.bot.Send(doc); err != nil {
		return fmt.Errorf("failed to send document: %w", err)
	}
	return nil
}

func isParseError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "can't parse entities")
}

func isNotModified(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}
