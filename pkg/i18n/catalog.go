package i18n

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultLocale is the locale the card form renders in when none is set.
const DefaultLocale = "de-DE"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Aliases  []string          `yaml:"aliases"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is an in-memory Translator keyed by normalized locale.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: make(map[string]map[string]string)}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the catalog built from the embedded locale files.
// The result is shared; callers that need to add messages should build their
// own with NewCatalog and Load.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		entries, err := localesFS.ReadDir("locales")
		if err != nil {
			defaultErr = err
			return
		}
		c := NewCatalog()
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
				continue
			}
			f, err := localesFS.Open("locales/" + entry.Name())
			if err != nil {
				defaultErr = err
				return
			}
			err = c.Load(f)
			_ = f.Close()
			if err != nil {
				defaultErr = fmt.Errorf("i18n: load %s: %w", entry.Name(), err)
				return
			}
		}
		defaultCatalog = c
	})
	return defaultCatalog, defaultErr
}

// MustDefaultCatalog is DefaultCatalog for package-level wiring.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Load merges a YAML message file into the catalog. Later loads override
// earlier messages for the same locale and key.
func (c *Catalog) Load(r io.Reader) error {
	if c == nil {
		return fmt.Errorf("i18n: nil catalog")
	}
	if r == nil {
		return fmt.Errorf("i18n: missing reader")
	}
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return fmt.Errorf("i18n: decode catalog: %w", err)
	}
	locale := normalizeLocale(file.Locale)
	if locale == "" {
		return fmt.Errorf("i18n: catalog is missing a locale")
	}

	c.Add(locale, file.Messages)
	for _, alias := range file.Aliases {
		if alias = normalizeLocale(alias); alias != "" {
			c.Add(alias, file.Messages)
		}
	}
	return nil
}

// Add registers messages for locale.
func (c *Catalog) Add(locale string, messages map[string]string) {
	if c == nil || len(messages) == 0 {
		return
	}
	locale = normalizeLocale(locale)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messages == nil {
		c.messages = make(map[string]map[string]string)
	}
	bucket := c.messages[locale]
	if bucket == nil {
		bucket = make(map[string]string, len(messages))
		c.messages[locale] = bucket
	}
	for key, msg := range messages {
		bucket[strings.TrimSpace(key)] = msg
	}
}

// Translate looks up key for locale, then for the locale's base language.
// Args, when present, are applied with fmt.Sprintf.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range localeChain(locale) {
		if msg, ok := c.messages[candidate][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, locale, key)
}

func localeChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = normalizeLocale(DefaultLocale)
	}
	chain := []string{locale}
	if base, _, ok := strings.Cut(locale, "-"); ok && base != "" {
		chain = append(chain, base)
	}
	return chain
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}
