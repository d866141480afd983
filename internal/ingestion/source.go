// Package ingestion provides line sources for reading access log files.
package ingestion

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/models"
)

// Line is a single raw log line together with its position in the file.
type Line struct {
	// Num is the 1-based line number.
	Num int

	// Text is the line content without the trailing newline.
	Text string
}

// Source is the interface that log line sources must implement.
type Source interface {
	// Read reads log lines and sends them to the provided channel.
	// It returns when the context is cancelled or the source is exhausted.
	// The channel is not closed by Read; that is the caller's job.
	Read(ctx context.Context, lines chan<- Line) error

	// Name returns a human-readable name for this source.
	Name() string
}

// FileSource reads lines from a plain or gzip-compressed log file.
type FileSource struct {
	log *models.LogFile
}

// NewFileSource creates a source for the given log file.
func NewFileSource(log *models.LogFile) *FileSource {
	return &FileSource{log: log}
}

// Name returns the source name.
func (f *FileSource) Name() string {
	return fmt.Sprintf("file:%s", f.log.Path)
}

// Read reads log lines from the file, transparently decompressing gzip.
func (f *FileSource) Read(ctx context.Context, lines chan<- Line) error {
	if !f.log.Extension.Valid() {
		return analyzererrors.NewUnsupportedExtensionError(string(f.log.Extension))
	}

	file, err := os.Open(f.log.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return analyzererrors.NewLogFileNotFoundError(f.log.Path)
		}
		return analyzererrors.NewLogReadError(f.log.Path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if f.log.Extension == models.ExtensionGzip {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return analyzererrors.NewLogReadError(f.log.Path, err)
		}
		defer gz.Close()
		reader = gz
	}

	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long lines
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := Line{Num: lineNum, Text: scanner.Text()}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case lines <- line:
		}
	}

	if err := scanner.Err(); err != nil {
		return analyzererrors.NewLogReadError(f.log.Path, err)
	}
	return nil
}
