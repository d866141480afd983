package ingestion

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/models"
)

// collect drains a source into a slice of lines.
func collect(t *testing.T, src Source) ([]Line, error) {
	t.Helper()

	lines := make(chan Line, 64)
	errCh := make(chan error, 1)
	go func() {
		errCh <- src.Read(context.Background(), lines)
		close(lines)
	}()

	var out []Line
	for line := range lines {
		out = append(out, line)
	}
	return out, <-errCh
}

func writePlainLog(t *testing.T, dir string, content string) *models.LogFile {
	t.Helper()
	path := filepath.Join(dir, "nginx-access-ui.log-20190102.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return &models.LogFile{
		Path:      path,
		Date:      time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		Extension: models.ExtensionPlain,
	}
}

func writeGzipLog(t *testing.T, dir string, content string) *models.LogFile {
	t.Helper()
	path := filepath.Join(dir, "nginx-access-ui.log-20190102.gz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	return &models.LogFile{
		Path:      path,
		Date:      time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		Extension: models.ExtensionGzip,
	}
}

func TestFileSourceReadPlain(t *testing.T) {
	logFile := writePlainLog(t, t.TempDir(), "first\nsecond\nthird\n")

	lines, err := collect(t, NewFileSource(logFile))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Num != 1 || lines[0].Text != "first" {
		t.Errorf("line 1 = %+v", lines[0])
	}
	if lines[2].Num != 3 || lines[2].Text != "third" {
		t.Errorf("line 3 = %+v", lines[2])
	}
}

func TestFileSourceReadGzip(t *testing.T) {
	logFile := writeGzipLog(t, t.TempDir(), "alpha\nbeta\n")

	lines, err := collect(t, NewFileSource(logFile))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1].Text != "beta" {
		t.Errorf("line 2 text = %q, want %q", lines[1].Text, "beta")
	}
}

func TestFileSourceReadEmpty(t *testing.T) {
	logFile := writePlainLog(t, t.TempDir(), "")

	lines, err := collect(t, NewFileSource(logFile))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestFileSourceUnsupportedExtension(t *testing.T) {
	logFile := writePlainLog(t, t.TempDir(), "data\n")
	logFile.Extension = "bz2"

	_, err := collect(t, NewFileSource(logFile))
	if !errors.Is(err, analyzererrors.ErrUnsupportedExtension) {
		t.Errorf("Read() error = %v, want ErrUnsupportedExtension", err)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	logFile := &models.LogFile{
		Path:      filepath.Join(t.TempDir(), "nginx-access-ui.log-20190102.log"),
		Extension: models.ExtensionPlain,
	}

	_, err := collect(t, NewFileSource(logFile))
	if !errors.Is(err, analyzererrors.ErrLogFileNotFound) {
		t.Errorf("Read() error = %v, want ErrLogFileNotFound", err)
	}
}

func TestFileSourceCorruptGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nginx-access-ui.log-20190102.gz")
	if err := os.WriteFile(path, []byte("this is not gzip"), 0644); err != nil {
		t.Fatal(err)
	}
	logFile := &models.LogFile{Path: path, Extension: models.ExtensionGzip}

	_, err := collect(t, NewFileSource(logFile))
	if err == nil {
		t.Fatal("Read() expected error for corrupt gzip")
	}
	if !errors.Is(err, analyzererrors.ErrLogReadFailed) {
		t.Errorf("Read() error = %v, want ErrLogReadFailed", err)
	}
}

func TestFileSourceContextCancellation(t *testing.T) {
	logFile := writePlainLog(t, t.TempDir(), "one\ntwo\nthree\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unbuffered channel with no consumer: Read must bail out on the
	// cancelled context instead of blocking forever.
	lines := make(chan Line)
	err := NewFileSource(logFile).Read(ctx, lines)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Read() error = %v, want context.Canceled", err)
	}
}

func TestFileSourceName(t *testing.T) {
	logFile := &models.LogFile{Path: "/var/log/nginx-access-ui.log-20190102.log"}
	want := "file:/var/log/nginx-access-ui.log-20190102.log"
	if got := NewFileSource(logFile).Name(); got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
