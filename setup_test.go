package cardform

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-cardform/components/imagepreview"
	"github.com/goliatone/go-cardform/components/validity"
	"github.com/goliatone/go-cardform/pkg/config"
	"github.com/goliatone/go-cardform/pkg/metrics"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestSetup_BindsBothBehaviours(t *testing.T) {
	photo := imagepreview.NewInput("image/*")
	container := &imagepreview.Container{}
	issued := validity.NewInput("issued_date", "")
	display := &validity.Display{}

	bindings := Setup(Form{
		ImageInputs: []imagepreview.FileInput{photo, imagepreview.NewInput(".pdf")},
		Preview:     container,
		IssuedDate:  issued,
		ValidUntil:  display,
	})

	photo.Select(imagepreview.MemFile{FileName: "me.png", Data: pngBytes})
	issued.Set("2024-03-15")
	bindings.Wait()

	if got := display.Text(); got != "Gültig bis: 15.3.2029" {
		t.Fatalf("unexpected valid-until text %q", got)
	}
	if container.Writes() != 1 {
		t.Fatalf("expected one preview write, got %d", container.Writes())
	}
	if bindings.Preview.Bound() != 1 {
		t.Fatalf("expected one bound image input, got %d", bindings.Preview.Bound())
	}
}

func TestSetup_MissingHandlesAreNoOps(t *testing.T) {
	bindings := Setup(Form{})
	bindings.Wait()
	if bindings.Validity.Update().Text != "" {
		t.Fatalf("expected inert validity binder")
	}

	var nilBindings *Bindings
	nilBindings.Wait()
}

func TestSetup_LeapDayRollsForward(t *testing.T) {
	issued := validity.NewInput("issued_date", "")
	display := &validity.Display{}
	Setup(Form{IssuedDate: issued, ValidUntil: display})

	issued.Set("2024-02-29")
	if got := display.Text(); got != "Gültig bis: 1.3.2029" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestSetup_SharedMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	issued := validity.NewInput("issued_date", "")
	display := &validity.Display{}
	Setup(Form{IssuedDate: issued, ValidUntil: display}, WithMetrics(m))

	issued.Set("2024-03-15")
	issued.Set("")

	if got := testutil.ToFloat64(m.ValidityComputations.WithLabelValues("valid")); got != 1 {
		t.Fatalf("expected one valid computation, got %v", got)
	}
	if got := testutil.ToFloat64(m.ValidityComputations.WithLabelValues("invalid")); got != 1 {
		t.Fatalf("expected one invalid computation, got %v", got)
	}
}

func TestFromConfig_AppliesPolicyAndYears(t *testing.T) {
	cfg := config.Default()
	cfg.ValidityYears = 10
	cfg.MemberPolicy = map[string]int{"jf": 2}

	issued := validity.NewInput("issued_date", "")
	display := &validity.Display{}
	memberType := "JF"
	Setup(Form{IssuedDate: issued, ValidUntil: display},
		append(FromConfig(cfg), WithValidityOptions(validity.WithMemberTypeSource(func() string { return memberType })))...)

	issued.Set("2024-03-15")
	if got := display.Text(); got != "Gültig bis: 15.3.2026" {
		t.Fatalf("expected member policy to apply, got %q", got)
	}

	memberType = "BF"
	issued.Set("2024-03-15")
	if got := display.Text(); got != "Gültig bis: 15.3.2034" {
		t.Fatalf("expected configured default years, got %q", got)
	}

	memberType = "EXTERN"
	issued.Set("2024-03-15")
	if got := display.Text(); got != "Gültig bis: 15.3.2025" {
		t.Fatalf("expected default policy to survive, got %q", got)
	}
}
