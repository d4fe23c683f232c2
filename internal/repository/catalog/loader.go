// Package catalog loads the product catalog and the pre-authored answer file
// from disk at startup. Missing or unparsable files degrade to empty or
// built-in data with a warning; the service always starts.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"vape-support-be/internal/pkg/logger"
	"vape-support-be/pkg/answercache"
	"vape-support-be/pkg/store"
)

type Loader struct {
	logger logger.ILogger
}

func NewLoader(log logger.ILogger) *Loader {
	return &Loader{logger: log}
}

// LoadProducts reads the catalog JSON. A missing or unparsable file yields an
// empty catalog so the service can still answer from the cache and canned
// responses.
func (l *Loader) LoadProducts(path string) ([]store.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("catalog", "product catalog not found, starting empty", map[string]interface{}{
				"path": path,
			})
			return []store.Product{}, nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var products []store.Product
	if err := json.Unmarshal(data, &products); err != nil {
		l.logger.Warn("catalog", "product catalog unparsable, starting empty", map[string]interface{}{
			"path": path, "error": err.Error(),
		})
		return []store.Product{}, nil
	}

	for i := range products {
		if products[i].Boost == 0 {
			products[i].Boost = 1.0
		}
	}

	l.logger.Info("catalog", "product catalog loaded", map[string]interface{}{
		"path":  path,
		"count": len(products),
	})
	return products, nil
}

// LoadAnswers reads the pre-authored answer file. A missing or unparsable
// file falls back to the built-in defaults.
func (l *Loader) LoadAnswers(path string) (*answercache.Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("catalog", "answer file not found, using built-in defaults", map[string]interface{}{
				"path": path,
			})
			return answercache.New(answercache.Defaults()), nil
		}
		return nil, fmt.Errorf("read answers %s: %w", path, err)
	}

	var entries []store.CachedAnswer
	if err := json.Unmarshal(data, &entries); err != nil {
		l.logger.Warn("catalog", "answer file unparsable, using built-in defaults", map[string]interface{}{
			"path": path, "error": err.Error(),
		})
		return answercache.New(answercache.Defaults()), nil
	}

	l.logger.Info("catalog", "answer cache loaded", map[string]interface{}{
		"path":  path,
		"count": len(entries),
	})
	return answercache.New(entries), nil
}
