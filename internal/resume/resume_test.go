package resume

import (
	"bytes"
	"testing"
)

func TestBuild_ProducesPDF(t *testing.T) {
	gen := NewGenerator()

	pdf, err := gen.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}
	if len(pdf) < 2_000 {
		t.Fatalf("document suspiciously small: %d bytes", len(pdf))
	}
}

func TestBuild_NoRequiredInput(t *testing.T) {
	gen := NewGenerator()

	// every call succeeds with the same fixed layout
	for i := 0; i < 3; i++ {
		if _, err := gen.Build(); err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
	}
}
