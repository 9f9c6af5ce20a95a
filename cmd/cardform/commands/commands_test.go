package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardform/pkg/config"
	"github.com/goliatone/go-cardform/pkg/logger"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(stdout.String()), err
}

func TestValidUntilCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"valid-until", "2024-03-15"}, want: "Gültig bis: 15.3.2029"},
		{name: "german input", args: []string{"valid-until", "15.03.2024"}, want: "Gültig bis: 15.3.2029"},
		{name: "leap day", args: []string{"valid-until", "2024-02-29"}, want: "Gültig bis: 1.3.2029"},
		{name: "intern", args: []string{"valid-until", "-m", "PRAKTIKANT", "2024-03-15"}, want: "Gültig bis: 15.3.2025"},
		{name: "invalid", args: []string{"valid-until", "soon"}, want: "Gültig bis: Ungültiges Datum"},
		{name: "iso", args: []string{"valid-until", "--iso", "2024-03-15"}, want: "2029-03-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValidUntilCmd_ISOInvalid(t *testing.T) {
	if _, err := run(t, "valid-until", "--iso", "soon"); err == nil {
		t.Fatalf("expected error for invalid date in iso mode")
	}
}

func TestValidUntilCmd_UsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardform.yaml")
	if err := os.WriteFile(path, []byte("validity_years: 10\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	got, err := run(t, "--config", path, "valid-until", "2024-03-15")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "Gültig bis: 15.3.2034" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPreviewCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	if err := os.WriteFile(path, pngBytes, 0o600); err != nil {
		t.Fatalf("write image: %v", err)
	}

	got, err := run(t, "preview", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(got, `<img src="data:image/png;base64,`) || !strings.Contains(got, `class="profile-image-preview"`) {
		t.Fatalf("unexpected fragment %q", got)
	}
}

func TestPreviewCmd_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := run(t, "preview", path); err == nil {
		t.Fatalf("expected error for non-image file")
	}
	if _, err := run(t, "preview", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

type fakePrompter struct {
	answer    string
	selected  int
	err       error
	validated error
}

func (f *fakePrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if cfg.Validator != nil {
		f.validated = cfg.Validator(f.answer)
	}
	return f.answer, nil
}

func (f *fakePrompter) Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error) {
	return f.selected, nil
}

func interactiveRoot(p Prompter) (*cobra.Command, *bytes.Buffer) {
	var stdout bytes.Buffer
	a := &app{cfg: config.Default(), log: logger.Discard()}
	cmd := interactiveCmd(a, p)
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})
	return cmd, &stdout
}

func TestInteractiveCmd(t *testing.T) {
	prompter := &fakePrompter{answer: "2024-03-15", selected: 1}
	cmd, out := interactiveRoot(prompter)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Gültig bis: 15.3.2029" {
		t.Fatalf("unexpected output %q", got)
	}
	if prompter.validated != nil {
		t.Fatalf("expected answer to validate, got %v", prompter.validated)
	}
}

func TestInteractiveCmd_ExternalMember(t *testing.T) {
	cmd, out := interactiveRoot(&fakePrompter{answer: "2024-03-15", selected: 4})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Gültig bis: 15.3.2025" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInteractiveCmd_Validator(t *testing.T) {
	prompter := &fakePrompter{answer: "morgen"}
	cmd, _ := interactiveRoot(prompter)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if prompter.validated == nil {
		t.Fatalf("expected validator to reject %q", prompter.answer)
	}
}

func TestInteractiveCmd_Aborted(t *testing.T) {
	cmd, _ := interactiveRoot(&fakePrompter{err: ErrAborted})
	if err := cmd.Execute(); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNewRouter(t *testing.T) {
	cfg := config.Default()
	cfg.BasePath = "/members"
	a := &app{cfg: cfg, log: logger.Discard()}

	router, err := a.newRouter(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	srv := httptest.NewServer(router)
	defer srv.Close()

	for path, want := range map[string]int{
		"/healthz": http.StatusNoContent,
		"/members/api/valid-until?issued_date=2024-03-15": http.StatusOK,
		"/members/openapi.yaml":                           http.StatusOK,
		"/members/runtime/cardform.js":                    http.StatusOK,
		"/metrics":                                        http.StatusOK,
	} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		_ = res.Body.Close()
		if res.StatusCode != want {
			t.Fatalf("%s: want %d, got %d", path, want, res.StatusCode)
		}
	}

	res, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer res.Body.Close()
	var body bytes.Buffer
	_, _ = body.ReadFrom(res.Body)
	if !strings.Contains(body.String(), "cardform_validity_computations_total") {
		t.Fatalf("expected component metrics to be exposed")
	}
}

func TestListen_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	a := &app{cfg: cfg, log: logger.Discard()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.listen(ctx, http.NotFoundHandler()) }()
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
