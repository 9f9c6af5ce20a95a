package cardform

import (
	"io/fs"
	"strings"
	"testing"
)

func TestRuntimeAssetsFSContainsRuntime(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), "cardform.js")
	if err != nil {
		t.Fatalf("expected runtime to be readable: %v", err)
	}
	for _, endpoint := range []string{"/api/image-preview", "/api/valid-until"} {
		if !strings.Contains(string(data), endpoint) {
			t.Fatalf("expected runtime to reference %s", endpoint)
		}
	}
}
