// Package content loads per-locale translation tables for the marketing
// site from a directory of JSON files, one file per locale.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DefaultLocale is the fallback for unknown locales and missing keys.
const DefaultLocale = "en"

type Registry struct {
	mu      sync.RWMutex
	locales map[string]map[string]string
}

func NewRegistry() *Registry {
	return &Registry{locales: make(map[string]map[string]string)}
}

// LoadDir reads every *.json file in dir as a locale table. The filename
// (without extension) is the locale code.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales dir: %w", err)
	}

	registry := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var table map[string]string
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", entry.Name(), err)
		}

		locale := strings.TrimSuffix(entry.Name(), ".json")
		registry.Register(locale, table)
	}

	if !registry.Has(DefaultLocale) {
		return nil, fmt.Errorf("locales dir %s is missing the %s table", dir, DefaultLocale)
	}
	return registry, nil
}

func (r *Registry) Register(locale string, table map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locales[locale] = table
}

func (r *Registry) Has(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.locales[locale]
	return ok
}

// T resolves key in the given locale, falling back to the default locale
// and finally to the key itself.
func (r *Registry) T(locale, key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if table, ok := r.locales[locale]; ok {
		if val, ok := table[key]; ok {
			return val
		}
	}
	if table, ok := r.locales[DefaultLocale]; ok {
		if val, ok := table[key]; ok {
			return val
		}
	}
	return key
}

// Locales returns the loaded locale codes, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.locales))
	for code := range r.locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
