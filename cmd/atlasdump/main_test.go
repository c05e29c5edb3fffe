package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hubastard/grovetext/engine/text"
)

func TestOpenFont_Default(t *testing.T) {
	opts := text.DefaultOptions()
	opts.Size = 12
	fc, err := openFont("", 0, opts)
	if err != nil {
		t.Fatalf("openFont: %v", err)
	}
	defer fc.Close()

	var buf bytes.Buffer
	printPreview(&buf, fc.Atlas(), 40)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatal("empty preview")
	}
	for i, l := range lines {
		if len(l) > 40 {
			t.Errorf("line %d has %d columns, want <= 40", i, len(l))
		}
	}
}

func TestOpenFont_BadFace(t *testing.T) {
	if _, err := openFont("", 3, text.DefaultOptions()); err == nil {
		t.Fatal("expected error for face index out of range")
	}
}
