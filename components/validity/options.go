package validity

import (
	"log/slog"
	"net/http"

	"github.com/goliatone/go-cardform/pkg/i18n"
	"github.com/goliatone/go-cardform/pkg/logger"
	"github.com/goliatone/go-cardform/pkg/metrics"
)

const (
	DefaultYears     = 5
	DefaultRoutePath = "/api/valid-until"
	DefaultDateParam = "issued_date"

	defaultMemberTypeParam = "member_type"
	defaultPrefix          = "Gültig bis:"
	defaultInvalidText     = "Ungültiges Datum"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	DateParam       string
	MemberTypeParam string
	Years           int
	Locale          string
	Policy          Policy
	Translator      i18n.Translator
	OnMissing       i18n.MissingTranslationHandler
	Guard           GuardFunc
	Logger          *slog.Logger
	Metrics         *metrics.Metrics

	// MemberType and ManualValidity let a binder read sibling form fields
	// at change time.
	MemberType     func() string
	ManualValidity func() bool
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       DefaultRoutePath,
		DateParam:       DefaultDateParam,
		MemberTypeParam: defaultMemberTypeParam,
		Years:           DefaultYears,
		Locale:          i18n.DefaultLocale,
		Policy:          DefaultPolicy(),
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
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.DateParam == "" {
		opts.DateParam = DefaultDateParam
	}
	if opts.MemberTypeParam == "" {
		opts.MemberTypeParam = defaultMemberTypeParam
	}
	if opts.Years <= 0 {
		opts.Years = DefaultYears
	}
	if opts.Locale == "" {
		opts.Locale = i18n.DefaultLocale
	}
	if opts.Translator == nil {
		if catalog, err := i18n.DefaultCatalog(); err == nil {
			opts.Translator = catalog
		}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Policy != nil {
		opts.Policy = opts.Policy.clone()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithDateParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DateParam = name
	}
}

func WithMemberTypeParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MemberTypeParam = name
	}
}

func WithYears(years int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Years = years
	}
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

func WithPolicy(policy Policy) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Policy = policy
	}
}

func WithTranslator(t i18n.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
	}
}

func WithOnMissing(fn i18n.MissingTranslationHandler) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnMissing = fn
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(log *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = log
	}
}

func WithMetrics(m *metrics.Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = m
	}
}

func WithMemberTypeSource(fn func() string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MemberType = fn
	}
}

func WithManualValiditySource(fn func() bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ManualValidity = fn
	}
}
