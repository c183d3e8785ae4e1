package logging_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"antenna/internal/config"
	"antenna/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "antenna-test.log")
	logger, err := logging.New(logging.Options{
		Format:           format,
		Level:            level,
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleIncludesComponentPrefix(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	base, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "info",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger := logging.NewComponentLogger(base, "pipeline")
	logger.Info("listing fetched", logging.Int("shows", 3))

	content := readLog(t, logPath)
	if !strings.Contains(content, "INFO pipeline: listing fetched") {
		t.Fatalf("expected component prefix in output, got %q", content)
	}
	if !strings.Contains(content, "shows=3") {
		t.Fatalf("expected key=value attr in output, got %q", content)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	logger.Info("resolved", logging.Args(logging.String("title", "The Witcher"))...)

	content := readLog(t, logPath)
	if !strings.Contains(content, `title="The Witcher"`) {
		t.Fatalf("expected quoted attr value, got %q", content)
	}
}

func TestConsoleOmitsCallerForInfo(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "info")
	logger.Info("message without caller")

	if content := readLog(t, logPath); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleIncludesCallerForDebug(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "debug")
	logger.Info("message with caller")

	if content := readLog(t, logPath); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestJSONUsesShortKeys(t *testing.T) {
	logger, logPath := newFileLogger(t, "json", "info")
	logger.Info("json message", logging.Args(logging.String("k", "v"))...)

	content := strings.TrimSpace(readLog(t, logPath))
	var entry map[string]any
	if err := json.Unmarshal([]byte(content), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", content, err)
	}
	if entry["msg"] != "json message" {
		t.Fatalf("expected msg key, got %v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
	if entry["k"] != "v" {
		t.Fatalf("expected attr to pass through, got %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "yaml"})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	logger, logPath := newFileLogger(t, "console", "chatty")
	logger.Debug("hidden")
	logger.Info("visible")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") {
		t.Fatalf("expected debug line suppressed, got %q", content)
	}
	if !strings.Contains(content, "visible") {
		t.Fatalf("expected info line present, got %q", content)
	}
}

func TestWarnWithContextInjectsGuidanceFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{
		Format:           "json",
		Level:            "info",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "lookup failed", "lookup_not_found")

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("unmarshal warn line: %v", err)
	}
	if entry[logging.FieldEventType] != "lookup_not_found" {
		t.Fatalf("expected event_type injected, got %v", entry)
	}
	if _, ok := entry[logging.FieldErrorHint]; !ok {
		t.Fatalf("expected error_hint injected, got %v", entry)
	}
	if _, ok := entry[logging.FieldImpact]; !ok {
		t.Fatalf("expected impact injected, got %v", entry)
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "resolver")
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Info("discarded")
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Directory = t.TempDir()
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("startup")

	content := readLog(t, filepath.Join(cfg.Logging.Directory, "antenna.log"))
	if !strings.Contains(content, "startup") {
		t.Fatalf("expected log file to capture output, got %q", content)
	}
}
