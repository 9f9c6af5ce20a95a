package cardform

import (
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardform/components/imagepreview"
	"github.com/goliatone/go-cardform/components/validity"
	"github.com/goliatone/go-cardform/pkg/config"
	"github.com/goliatone/go-cardform/pkg/events"
	"github.com/goliatone/go-cardform/pkg/i18n"
	"github.com/goliatone/go-cardform/pkg/logger"
	"github.com/goliatone/go-cardform/pkg/metrics"
)

// Options holds the settings shared by both components plus per-component
// overrides, which are applied after the shared ones.
type Options struct {
	Locale        string
	Translator    i18n.Translator
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	Dispatcher    events.Dispatcher
	Preview       []imagepreview.OptionFn
	Validity      []validity.OptionFn
	ServeContract bool
	ServeRuntime  bool
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Locale:        i18n.DefaultLocale,
		ServeContract: true,
		ServeRuntime:  true,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Locale == "" {
		opts.Locale = i18n.DefaultLocale
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	return opts
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		o.Locale = locale
	}
}

func WithTranslator(t i18n.Translator) OptionFn {
	return func(o *Options) {
		o.Translator = t
	}
}

func WithLogger(log *slog.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = log
	}
}

func WithMetrics(m *metrics.Metrics) OptionFn {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithDispatcher routes preview completions through d.
func WithDispatcher(d events.Dispatcher) OptionFn {
	return func(o *Options) {
		o.Dispatcher = d
	}
}

func WithPreviewOptions(fns ...imagepreview.OptionFn) OptionFn {
	return func(o *Options) {
		o.Preview = append(o.Preview, fns...)
	}
}

func WithValidityOptions(fns ...validity.OptionFn) OptionFn {
	return func(o *Options) {
		o.Validity = append(o.Validity, fns...)
	}
}

// WithoutContract skips mounting the OpenAPI document.
func WithoutContract() OptionFn {
	return func(o *Options) {
		o.ServeContract = false
	}
}

// WithoutRuntimeAssets skips mounting the browser runtime.
func WithoutRuntimeAssets() OptionFn {
	return func(o *Options) {
		o.ServeRuntime = false
	}
}

// FromConfig translates service configuration into options.
func FromConfig(cfg config.Config) []OptionFn {
	fns := []OptionFn{WithLocale(cfg.Locale)}

	policy := validity.DefaultPolicy()
	for memberType, years := range cfg.MemberPolicy {
		policy[strings.ToUpper(strings.TrimSpace(memberType))] = years
	}
	fns = append(fns, WithValidityOptions(
		validity.WithYears(cfg.ValidityYears),
		validity.WithPolicy(policy),
	))

	previewFns := []imagepreview.OptionFn{imagepreview.WithMaxUploadBytes(cfg.MaxUploadBytes)}
	if len(cfg.Theme.Tokens) > 0 {
		previewFns = append(previewFns, imagepreview.WithTheme(&theme.RendererConfig{
			Theme:  cfg.Theme.Name,
			Tokens: cfg.Theme.Tokens,
		}))
	}
	return append(fns, WithPreviewOptions(previewFns...))
}

func (o Options) previewOptions() []imagepreview.OptionFn {
	fns := []imagepreview.OptionFn{
		imagepreview.WithLocale(o.Locale),
		imagepreview.WithLogger(o.Logger.With("component", "imagepreview")),
		imagepreview.WithMetrics(o.Metrics),
	}
	if o.Translator != nil {
		fns = append(fns, imagepreview.WithTranslator(o.Translator))
	}
	if o.Dispatcher != nil {
		fns = append(fns, imagepreview.WithDispatcher(o.Dispatcher))
	}
	return append(fns, o.Preview...)
}

func (o Options) validityOptions() []validity.OptionFn {
	fns := []validity.OptionFn{
		validity.WithLocale(o.Locale),
		validity.WithLogger(o.Logger.With("component", "validity")),
		validity.WithMetrics(o.Metrics),
	}
	if o.Translator != nil {
		fns = append(fns, validity.WithTranslator(o.Translator))
	}
	return append(fns, o.Validity...)
}
