package i18n

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator was configured.
	ErrMissingTranslator = errors.New("i18n: translator not configured")
	// ErrMissingKey is returned by Catalog when a key has no message for the
	// requested locale.
	ErrMissingKey = errors.New("i18n: missing translation")
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to render when a key cannot be
// translated. params carries the call arguments; Translate passes a
// map[string]any{"default": fallback} as the first element.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	if fn == nil {
		return "", ErrMissingTranslator
	}
	return fn(locale, key, args...)
}

// Translate resolves key through t, falling back to fallback (or the key when
// fallback is blank) via onMissing.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = MissingDefault
	}
	params := []any{map[string]any{"default": fallback}}

	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if err == nil {
		err = fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return onMissing(locale, key, params, err)
}

// MissingDefault returns the "default" param when present, else the key.
func MissingDefault(_ string, key string, params []any, _ error) string {
	if fallback := defaultParam(params); fallback != "" {
		return fallback
	}
	return key
}

func defaultParam(params []any) string {
	for _, p := range params {
		m, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := m["default"].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
