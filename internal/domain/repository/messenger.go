package repository

import "context"

// Messenger foydalanuvchiga xabar va fayl yetkazish uchun interface
type Messenger interface {
	// SendText Markdown xabar yuborish, yuborilgan xabar ID sini qaytaradi
	SendText(ctx context.Context, chatID int64, text string) (int, error)

	// EditText yuborilgan xabarni tahrirlash
	EditText(ctx context.Context, chatID int64, messageID int, text string) error

	// DeleteMessage xabarni o'chirish
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// SendDocument faylni hujjat sifatida yuborish
	SendDocument(ctx context.Context, chatID int64, path, filename, caption string) error
}
