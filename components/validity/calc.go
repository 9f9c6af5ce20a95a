package validity

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-cardform/pkg/i18n"
)

const isoLayout = "2006-01-02"

// Layouts accepted by ParseIssuedDate, tried in order. Day and month accept
// one or two digits.
var issuedDateLayouts = []string{
	isoLayout,
	"2.1.2006",
	"1/2/2006",
	"1/2/06",
}

// Request is one computation input.
type Request struct {
	IssuedDate     string
	MemberType     string
	ManualValidity bool
}

// Result is the outcome of a computation. Valid is false when the issue date
// could not be parsed; Manual is true when the card's validity is maintained
// by hand and nothing should be displayed.
type Result struct {
	Issued     time.Time
	ValidUntil time.Time
	Years      int
	Valid      bool
	Manual     bool
	Text       string
}

// IssuedISO returns the issue date as YYYY-MM-DD, or "" when invalid.
func (r Result) IssuedISO() string {
	if !r.Valid {
		return ""
	}
	return r.Issued.Format(isoLayout)
}

// ValidUntilISO returns the computed date as YYYY-MM-DD, or "" when invalid.
func (r Result) ValidUntilISO() string {
	if !r.Valid {
		return ""
	}
	return r.ValidUntil.Format(isoLayout)
}

// ParseIssuedDate parses raw as a civil date at UTC midnight.
func ParseIssuedDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range issuedDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddYears advances t by years calendar years. Days that do not exist in the
// target year roll over: 2024-02-29 plus five years is 2029-03-01.
func AddYears(t time.Time, years int) time.Time {
	return t.AddDate(years, 0, 0)
}

// FormatDate renders t in the date convention of locale. German locales use
// D.M.YYYY without zero padding; anything else falls back to ISO 8601.
func FormatDate(t time.Time, locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if base, _, ok := strings.Cut(strings.ReplaceAll(lang, "_", "-"), "-"); ok {
		lang = base
	}
	switch lang {
	case "de":
		var b strings.Builder
		b.WriteString(strconv.Itoa(t.Day()))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(int(t.Month())))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(t.Year()))
		return b.String()
	default:
		return t.Format(isoLayout)
	}
}

// Calculate computes the valid-until display for raw using opts.Years.
func Calculate(raw string, opts Options) Result {
	return CalculateFor(Request{IssuedDate: raw}, opts)
}

// CalculateFor computes the valid-until display for req. An unparseable issue
// date yields Valid=false and the localized invalid-date text; it is never an
// error.
func CalculateFor(req Request, opts Options) Result {
	years := opts.Policy.YearsFor(req.MemberType, opts.Years)
	if years <= 0 {
		years = DefaultYears
	}
	if req.ManualValidity {
		return Result{Years: years, Manual: true}
	}

	prefix := i18n.Translate(opts.Translator, opts.Locale, "validity.prefix", defaultPrefix, opts.OnMissing)

	issued, ok := ParseIssuedDate(req.IssuedDate)
	if !ok {
		invalid := i18n.Translate(opts.Translator, opts.Locale, "validity.invalid", defaultInvalidText, opts.OnMissing)
		return Result{
			Years: years,
			Text:  prefix + " " + invalid,
		}
	}

	until := AddYears(issued, years)
	return Result{
		Issued:     issued,
		ValidUntil: until,
		Years:      years,
		Valid:      true,
		Text:       prefix + " " + FormatDate(until, opts.Locale),
	}
}

func outcome(r Result) string {
	switch {
	case r.Manual:
		return "manual"
	case r.Valid:
		return "valid"
	default:
		return "invalid"
	}
}
