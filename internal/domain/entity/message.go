package entity

import "time"

// SearchRequest foydalanuvchidan kelgan qidiruv so'rovi
type SearchRequest struct {
	ID        string
	ChatID    int64
	UserID    int64
	Username  string
	Text      string
	Timestamp time.Time
}
