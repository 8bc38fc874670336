package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

// fakeAI user promptda failOn bo'lsa xato qaytaradi
type fakeAI struct {
	mu      sync.Mutex
	failOn  string
	err     error
	reply   string
	prompts []string
}

func (f *fakeAI) GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, userPrompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.failOn != "" && strings.Contains(userPrompt, f.failOn) {
		return "", f.err
	}
	if f.reply == "" {
		return "Best value: the cheapest verified supplier.", nil
	}
	return f.reply, nil
}

func (f *fakeAI) Close() error { return nil }

func (f *fakeAI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// countingCatalog FindProduct chaqiruvlarini sanaydi
type countingCatalog struct {
	repository.CatalogRepository
	mu      sync.Mutex
	lookups int
}

func (c *countingCatalog) FindProduct(ctx context.Context, query string) (entity.Product, bool) {
	c.mu.Lock()
	c.lookups++
	c.mu.Unlock()
	return c.CatalogRepository.FindProduct(ctx, query)
}

type sentMessage struct {
	id   int
	text string
}

type sentDocument struct {
	path, filename, caption string
	existed                 bool
}

// fakeMessenger barcha yuborilgan xabarlarni yozib oladi
type fakeMessenger struct {
	mu        sync.Mutex
	nextID    int
	sent      []sentMessage
	edits     map[int][]string
	deleted   []int
	documents []sentDocument
	editErr   error
	docErr    error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{edits: make(map[int][]string)}
}

func (m *fakeMessenger) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.sent = append(m.sent, sentMessage{id: m.nextID, text: text})
	return m.nextID, nil
}

func (m *fakeMessenger) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return m.editErr
	}
	m.edits[messageID] = append(m.edits[messageID], text)
	return nil
}

func (m *fakeMessenger) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, messageID)
	return nil
}

func (m *fakeMessenger) SendDocument(ctx context.Context, chatID int64, path, filename, caption string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := os.Stat(path)
	m.documents = append(m.documents, sentDocument{path: path, filename: filename, caption: caption, existed: err == nil})
	return m.docErr
}

func (m *fakeMessenger) texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, s := range m.sent {
		out = append(out, s.text)
	}
	return out
}

// fakeReportBuilder dir ichida bo'sh fayl yaratadi
type fakeReportBuilder struct {
	dir     string
	err     error
	entries []entity.ProductOffers
	path    string
}

func (b *fakeReportBuilder) BuildReport(ctx context.Context, entries []entity.ProductOffers) (string, error) {
	b.entries = entries
	if b.err != nil {
		return "", b.err
	}
	b.path = filepath.Join(b.dir, "report.xlsx")
	if err := os.WriteFile(b.path, []byte("xlsx"), 0o644); err != nil {
		return "", err
	}
	return b.path, nil
}

var errTransport = errors.New("connection reset by peer")
