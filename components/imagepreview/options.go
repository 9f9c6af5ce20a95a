package imagepreview

import (
	"context"
	"log/slog"
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-cardform/pkg/events"
	"github.com/goliatone/go-cardform/pkg/i18n"
	"github.com/goliatone/go-cardform/pkg/logger"
	"github.com/goliatone/go-cardform/pkg/metrics"
	"github.com/goliatone/go-cardform/pkg/render/template"
)

const (
	DefaultRoutePath      = "/api/image-preview"
	DefaultFieldName      = "file"
	DefaultAcceptMatch    = "image"
	DefaultImageClass     = "profile-image-preview"
	DefaultMaxUploadBytes = 10 << 20

	// ClassToken is the theme token that overrides the image CSS class.
	ClassToken = "imagepreview.class"

	defaultAltText = "Bildvorschau"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath      string
	FieldName      string
	AcceptMatch    string
	MaxUploadBytes int64
	ImageClass     string
	Locale         string
	Translator     i18n.Translator
	OnMissing      i18n.MissingTranslationHandler
	Theme          *theme.RendererConfig
	Renderer       template.TemplateRenderer
	Reader         Reader
	Dispatcher     events.Dispatcher
	Context        context.Context
	Guard          GuardFunc
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:      DefaultRoutePath,
		FieldName:      DefaultFieldName,
		AcceptMatch:    DefaultAcceptMatch,
		MaxUploadBytes: DefaultMaxUploadBytes,
		ImageClass:     DefaultImageClass,
		Locale:         i18n.DefaultLocale,
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
	if opts.FieldName == "" {
		opts.FieldName = DefaultFieldName
	}
	if opts.AcceptMatch == "" {
		opts.AcceptMatch = DefaultAcceptMatch
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.ImageClass == "" {
		opts.ImageClass = DefaultImageClass
	}
	if opts.Locale == "" {
		opts.Locale = i18n.DefaultLocale
	}
	if opts.Translator == nil {
		if catalog, err := i18n.DefaultCatalog(); err == nil {
			opts.Translator = catalog
		}
	}
	if opts.Reader == nil {
		opts.Reader = DataURLReader{}
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = &events.Inline{}
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
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

func WithFieldName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FieldName = name
	}
}

func WithAcceptMatch(substr string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AcceptMatch = substr
	}
}

func WithMaxUploadBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxUploadBytes = n
	}
}

func WithImageClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ImageClass = class
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

func WithTranslator(t i18n.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

func WithRenderer(r template.TemplateRenderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = r
	}
}

func WithReader(r Reader) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Reader = r
	}
}

func WithDispatcher(d events.Dispatcher) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Dispatcher = d
	}
}

func WithContext(ctx context.Context) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Context = ctx
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

// imageClass resolves the CSS class, preferring the theme token.
func (o Options) imageClass() string {
	if o.Theme != nil {
		if class := o.Theme.Tokens[ClassToken]; class != "" {
			return class
		}
	}
	return o.ImageClass
}
