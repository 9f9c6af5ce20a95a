package imagepreview

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-cardform/pkg/i18n"
	"github.com/goliatone/go-cardform/pkg/render/template"
	"github.com/goliatone/go-cardform/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// FragmentTemplate is the template name RenderFragment renders.
const FragmentTemplate = "preview"

// ErrUnsafeSource is returned for data URLs that do not carry a base64 image.
var ErrUnsafeSource = errors.New("imagepreview: source is not a base64 image data URL")

// Fragment is the data handed to the preview template.
type Fragment struct {
	Src   string `json:"src"`
	Class string `json:"class"`
	Alt   string `json:"alt"`
}

// TemplatesFS exposes the embedded fragment templates so hosts can extend or
// override them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return templatesFS
	}
	return sub
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     template.TemplateRenderer
	defaultEngineErr  error
)

func defaultRenderer() (template.TemplateRenderer, error) {
	defaultEngineOnce.Do(func() {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			defaultEngineErr = err
			return
		}
		defaultEngine = engine
	})
	return defaultEngine, defaultEngineErr
}

// RenderFragment renders the preview <img> for dataURL and sanitizes it.
func RenderFragment(dataURL string, opts Options) (string, error) {
	if !isImageDataURL(dataURL) {
		return "", ErrUnsafeSource
	}

	renderer := opts.Renderer
	if renderer == nil {
		r, err := defaultRenderer()
		if err != nil {
			return "", fmt.Errorf("imagepreview: template engine: %w", err)
		}
		renderer = r
	}

	frag := Fragment{
		Src:   dataURL,
		Class: opts.imageClass(),
		Alt:   i18n.Translate(opts.Translator, opts.Locale, "imagepreview.alt", defaultAltText, opts.OnMissing),
	}
	out, err := renderer.RenderTemplate(FragmentTemplate, frag)
	if err != nil {
		return "", fmt.Errorf("imagepreview: render fragment: %w", err)
	}

	cleaned := strings.TrimSpace(fragmentPolicy().Sanitize(out))
	if cleaned == "" {
		return "", fmt.Errorf("imagepreview: fragment removed by sanitizer")
	}
	return cleaned, nil
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// fragmentPolicy allows a lone img with a class, alt text and a base64 image
// data URL source.
func fragmentPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.RequireParseableURLs(true)
		p.AllowURLSchemeWithCustomPolicy("data", func(u *url.URL) bool {
			return u.RawQuery == "" && u.Fragment == "" && isImageDataURL("data:"+u.Opaque)
		})
		p.AllowAttrs("src", "class", "alt").OnElements("img")
		policy = p
	})
	return policy
}

func isImageDataURL(raw string) bool {
	rest, ok := strings.CutPrefix(raw, "data:image/")
	if !ok {
		return false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return false
	}
	return !strings.ContainsAny(payload, " \t\r\n\"'<>")
}
