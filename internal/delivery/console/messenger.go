package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/supplier-research-bot/internal/domain/repository"
)

const separator = "────────────────────────────"

type consoleMessenger struct {
	mu     sync.Mutex
	out    io.Writer
	outDir string
	nextID int
	log    logrus.FieldLogger
}

// NewMessenger xabarlarni out ga yozadi, hisobotni outDir ga nusxalaydi.
// outDir bo'sh bo'lsa hisobot saqlanmaydi.
func NewMessenger(out io.Writer, outDir string, log logrus.FieldLogger) repository.Messenger {
	return &consoleMessenger{out: out, outDir: outDir, log: log}
}

func (m *consoleMessenger) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	if _, err := fmt.Fprintf(m.out, "%s\n%s\n", separator, strings.TrimSpace(text)); err != nil {
		return 0, fmt.Errorf("failed to write message: %w", err)
	}
	return m.nextID, nil
}

func (m *consoleMessenger) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := fmt.Fprintf(m.out, "… %s\n", strings.TrimSpace(text)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (m *consoleMessenger) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return nil
}

// SendDocument hisobotni outDir/filename ga nusxalash
func (m *consoleMessenger) SendDocument(ctx context.Context, chatID int64, path, filename, caption string) error {
	if m.outDir == "" {
		m.log.WithField("file", filename).Info("📎 Report generated (use --out to keep it)")
		return nil
	}

	if err := os.MkdirAll(m.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	target := filepath.Join(m.outDir, filename)
	if err := copyFile(path, target); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := fmt.Fprintf(m.out, "%s\n📎 %s: %s\n", separator, caption, target); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy report: %w", err)
	}
	return out.Close()
}
