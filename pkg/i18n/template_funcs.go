package i18n

import (
	"fmt"
	"strings"
)

// TemplateConfig configures the template helpers returned by TemplateFuncs.
type TemplateConfig struct {
	// LocaleKey is the map key read when a helper receives template data
	// instead of a locale string. Defaults to "locale".
	LocaleKey string
	// FuncName renames the translate helper. Defaults to "translate".
	FuncName  string
	OnMissing MissingTranslationHandler
}

// TemplateFuncs returns helpers for template engine globals:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
//
// localeSrc is either a locale string or a map carrying one under LocaleKey.
func TemplateFuncs(t Translator, cfg TemplateConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	name := strings.TrimSpace(cfg.FuncName)
	if name == "" {
		name = "translate"
	}
	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = MissingDefault
	}

	return map[string]any{
		name: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			locale := resolveLocale(localeSrc, localeKey)
			if t == nil {
				return onMissing(locale, key, params, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key, params...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, params, err)
			}
			return msg
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]string:
		return data[key]
	case map[string]any:
		v, ok := data[key]
		if !ok || v == nil {
			return ""
		}
		if s, ok := v.(string); ok {
			return s
		}
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}
