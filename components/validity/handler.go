package validity

import (
	"net/http"
	"time"

	"github.com/goliatone/go-cardform/pkg/httputil"
)

const endpointName = "valid-until"

type resultPayload struct {
	Text       string `json:"text"`
	IssuedDate string `json:"issued_date"`
	ValidUntil string `json:"valid_until"`
	Years      int    `json:"years"`
	Valid      bool   `json:"valid"`
	Manual     bool   `json:"manual"`
}

type resultResponse struct {
	Data resultPayload `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions serves valid-until computations. The issue date is read
// from the configured form or query parameter; an unparseable date still
// answers 200 with valid=false and the invalid-date text.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			httputil.MethodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
			return
		}
		defer opts.Metrics.ObserveEndpointLatency(endpointName, time.Now())

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				httputil.WriteGuardError(w, err)
				return
			}
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := Request{
			IssuedDate:     r.Form.Get(opts.DateParam),
			MemberType:     r.Form.Get(opts.MemberTypeParam),
			ManualValidity: parseBool(r.Form.Get("manual_validity")),
		}
		res := CalculateFor(req, opts)
		opts.Metrics.IncrementValidity(outcome(res))
		if !res.Valid && !res.Manual {
			opts.Logger.Debug("validity: unparseable issued date", "value", req.IssuedDate)
		}

		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, resultResponse{Data: resultPayload{
			Text:       res.Text,
			IssuedDate: res.IssuedISO(),
			ValidUntil: res.ValidUntilISO(),
			Years:      res.Years,
			Valid:      res.Valid,
			Manual:     res.Manual,
		}})
	})
}

func parseBool(raw string) bool {
	switch raw {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
