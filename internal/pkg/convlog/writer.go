// Package convlog appends conversation records to a daily JSONL file. It is a
// best-effort sink: write failures are logged and swallowed so a full disk
// never breaks the chat path.
package convlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"vape-support-be/internal/pkg/logger"
)

// Record is one logged chat exchange. Feedback arrives later as a separate
// record referencing the same ChatId.
type Record struct {
	ChatId        string    `json:"chat_id"`
	SessionId     string    `json:"session_id"`
	Timestamp     time.Time `json:"timestamp"`
	UserMessage   string    `json:"user_message,omitempty"`
	BotResponse   string    `json:"bot_response,omitempty"`
	Intent        string    `json:"intent,omitempty"`
	Confidence    float64   `json:"confidence,omitempty"`
	ProductsShown []string  `json:"products_shown,omitempty"`
	ProductURLs   []string  `json:"product_urls,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
}

type Writer struct {
	dir    string
	logger logger.ILogger

	mu sync.Mutex
}

func NewWriter(dir string, log logger.ILogger) *Writer {
	return &Writer{
		dir:    dir,
		logger: log,
	}
}

// Append serializes the record and appends it to the current day's file.
func (w *Writer) Append(rec Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		w.logger.Error("convlog", "create log directory failed", map[string]interface{}{
			"dir": w.dir, "error": err.Error(),
		})
		return
	}

	path := w.currentFile(rec.Timestamp)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		w.logger.Error("convlog", "open log file failed", map[string]interface{}{
			"path": path, "error": err.Error(),
		})
		return
	}
	defer f.Close()

	line, err := json.Marshal(rec)
	if err != nil {
		w.logger.Error("convlog", "marshal record failed", map[string]interface{}{
			"chat_id": rec.ChatId, "error": err.Error(),
		})
		return
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		w.logger.Error("convlog", "write record failed", map[string]interface{}{
			"path": path, "error": err.Error(),
		})
	}
}

func (w *Writer) currentFile(ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	name := fmt.Sprintf("chat_log_%s.jsonl", ts.Format("2006-01-02"))
	return filepath.Join(w.dir, name)
}
