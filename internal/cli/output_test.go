package cli

import (
	"strings"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	payload := map[string]any{"data": []any{}, "meta": map[string]any{"count": float64(0)}}

	var sb strings.Builder
	if err := render(&sb, "json", payload); err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"meta"`) {
		t.Errorf("expected JSON output with meta key, got %q", out)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("expected indented JSON, got %q", out)
	}
}

func TestRenderYAML(t *testing.T) {
	payload := map[string]any{"meta": map[string]any{"query": "inflation"}}

	var sb strings.Builder
	if err := render(&sb, "yaml", payload); err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(sb.String(), "query: inflation") {
		t.Errorf("expected YAML output, got %q", sb.String())
	}
}

func TestRenderDefaultsToJSON(t *testing.T) {
	var sb strings.Builder
	if err := render(&sb, "", map[string]any{"ok": true}); err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(sb.String(), `"ok": true`) {
		t.Errorf("expected JSON by default, got %q", sb.String())
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := render(&sb, "xml", nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
