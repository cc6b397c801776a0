package headings

import (
	"bytes"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, Extract("## Intro\n### A <b> & c\n## End")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<ul><li><a href="#intro">Intro</a><ul><li><a href="#a-b-c">A &lt;b&gt; &amp; c</a></li></ul></li><li><a href="#end">End</a></li></ul>`
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
