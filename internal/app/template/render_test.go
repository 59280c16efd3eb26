package template

import (
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("out/{{job}}", map[string]string{VarJob: "effVsPt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "out/effVsPt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ job }}_{{name}}", map[string]string{
		VarJob:  "sectors",
		VarName: "hEff_W0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "sectors_hEff_W0" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringPlain(t *testing.T) {
	out, err := RenderString("effVsPt", nil)
	if err != nil || out != "effVsPt" {
		t.Fatalf("plain strings pass through, got %q, %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	for _, in := range []string{"{{name}}", "{{job", "{{ }}"} {
		_, err := RenderString(in, map[string]string{VarJob: "j"})
		if err == nil {
			t.Fatalf("RenderString(%q): expected error", in)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("RenderString(%q): expected invalid_config, got %v", in, err)
		}
	}
}
