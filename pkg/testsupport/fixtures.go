package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// MustReadGolden reads a golden file. With UPDATE_GOLDENS set, a missing file
// is reported with the path to create instead of a bare read error.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && os.Getenv("UPDATE_GOLDENS") != "" {
			t.Fatalf("golden %s missing; write it with WriteGolden first", path)
		}
		t.Fatalf("read golden %s: %v", path, err)
	}
	return data
}

// MustReadGoldenString is MustReadGolden as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteGolden rewrites path with data when UPDATE_GOLDENS is set and reports
// whether it did.
func WriteGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written, so tests can assert they match.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
