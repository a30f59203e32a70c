// Package fileutils provides the file operations used by the pipeline: the
// encoding-tolerant sales data reader and shared write helpers.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"salesops/sales-analytics/internal/parsererror"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// fallbackCharmaps are tried in order when the file is not valid UTF-8.
// Latin-1 accepts every byte value, so the ladder always terminates.
var fallbackCharmaps = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadSalesLines reads the transaction file and returns its data lines with
// the header row and blank lines stripped. It tries UTF-8 first and falls
// back to latin-1/cp1252 decoding. Any failure here is the fatal error
// class: the run aborts and no output files are written.
func ReadSalesLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		log.WithError(err).WithField("file", path).Error("Failed to read sales data file")
		return nil, &parsererror.InputFileError{Path: path, Err: err}
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, &parsererror.InputFileError{Path: path, Err: err}
	}

	lines := splitDataLines(text)
	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(lines),
	}).Info("Read sales data lines")
	return lines, nil
}

// decodeText returns the file content as a UTF-8 string, decoding from a
// legacy charmap when necessary.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, cm := range fallbackCharmaps {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err == nil {
			log.WithField("encoding", cm.String()).Debug("Decoded sales data with fallback encoding")
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("content is not decodable as UTF-8, latin-1 or cp1252")
}

// splitDataLines trims line endings, drops blank lines and discards the
// header row.
func splitDataLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		lines = lines[1:] // first non-blank line is the header
	}
	return lines
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if info, err := os.Stat(dirPath); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// WriteFile writes data to a file, creating parent directories if needed.
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// OpenFile opens a file for reading, returning an error if the file doesn't exist
func OpenFile(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories if needed.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
