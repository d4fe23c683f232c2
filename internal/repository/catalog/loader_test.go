package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"vape-support-be/pkg/answercache"
)

// recordingLogger captures warning messages so degrade paths can be asserted.
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Sync() error {
	return nil
}

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProductsMissingFile(t *testing.T) {
	logged := &recordingLogger{}
	products, err := NewLoader(logged).LoadProducts(filepath.Join(t.TempDir(), "nope.json"))

	if err != nil {
		t.Fatalf("missing catalog should not error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("products = %d, want empty", len(products))
	}
	if len(logged.warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(logged.warns))
	}
}

func TestLoadProductsCorruptFile(t *testing.T) {
	logged := &recordingLogger{}
	path := writeDataFile(t, "{not valid json}")

	products, err := NewLoader(logged).LoadProducts(path)
	if err != nil {
		t.Fatalf("corrupt catalog should degrade, not error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("products = %d, want empty", len(products))
	}
	if len(logged.warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(logged.warns))
	}
}

func TestLoadProductsAppliesDefaultBoost(t *testing.T) {
	path := writeDataFile(t, `[{"name":"V5","url":"https://shop/v5"}]`)

	products, err := NewLoader(&recordingLogger{}).LoadProducts(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("products = %d, want 1", len(products))
	}
	if products[0].Boost != 1.0 {
		t.Errorf("Boost = %v, want default 1.0", products[0].Boost)
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	logged := &recordingLogger{}
	cache, err := NewLoader(logged).LoadAnswers(filepath.Join(t.TempDir(), "nope.json"))

	if err != nil {
		t.Fatalf("missing answers should not error: %v", err)
	}
	if cache.Size() != len(answercache.Defaults()) {
		t.Errorf("Size = %d, want built-in defaults %d", cache.Size(), len(answercache.Defaults()))
	}
	if len(logged.warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(logged.warns))
	}
}

func TestLoadAnswersCorruptFile(t *testing.T) {
	logged := &recordingLogger{}
	path := writeDataFile(t, "[broken")

	cache, err := NewLoader(logged).LoadAnswers(path)
	if err != nil {
		t.Fatalf("corrupt answers should degrade, not error: %v", err)
	}
	if cache.Size() != len(answercache.Defaults()) {
		t.Errorf("Size = %d, want built-in defaults %d", cache.Size(), len(answercache.Defaults()))
	}
	if len(logged.warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(logged.warns))
	}
}

func TestLoadAnswersValidFile(t *testing.T) {
	path := writeDataFile(t, `[{"name":"V5","full_name":"V5 Atomizer","keywords":["v5"]}]`)

	cache, err := NewLoader(&recordingLogger{}).LoadAnswers(path)
	if err != nil {
		t.Fatal(err)
	}
	if cache.Size() != 1 {
		t.Errorf("Size = %d, want 1", cache.Size())
	}
}
