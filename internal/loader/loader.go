// Package loader produces the property catalog the index is built from,
// either by reading a JSON file or by generating records in memory.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/propdex/propdex/internal/domain"
)

// Source prefixes.
const (
	filePrefix     = "file://"
	generatePrefix = "generate://"
)

// Load resolves a data source string into a property catalog.
// Supported forms: "file://<path>" (JSON array of properties) and
// "generate://<count>" (in-memory generation).
func Load(source string, logger *zap.Logger) ([]domain.Property, error) {
	switch {
	case strings.HasPrefix(source, filePrefix):
		return loadFromFile(strings.TrimPrefix(source, filePrefix), logger)
	case strings.HasPrefix(source, generatePrefix):
		return generate(strings.TrimPrefix(source, generatePrefix), logger)
	default:
		return nil, fmt.Errorf("invalid data source %q: use file://<path> or generate://<count>", source)
	}
}

func loadFromFile(path string, logger *zap.Logger) ([]domain.Property, error) {
	start := time.Now()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}

	var properties []domain.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}

	logger.Info("Loaded properties from file",
		zap.String("path", path),
		zap.Int("count", len(properties)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return properties, nil
}

func generate(countStr string, logger *zap.Logger) ([]domain.Property, error) {
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		return nil, fmt.Errorf("invalid generate count %q", countStr)
	}

	start := time.Now()
	properties := Generate(count)

	logger.Info("Generated properties in memory",
		zap.Int("count", len(properties)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return properties, nil
}
