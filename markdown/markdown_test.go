package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadingWithAnchor(t *testing.T) {
	got, err := Render([]byte("# Hello World"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := string(got)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, `id="hello-world"`) {
		t.Errorf("Render heading = %q, want h1 with anchor id", html)
	}
}

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
	}
	for _, tt := range tests {
		got, err := Render([]byte(tt.input))
		if err != nil {
			t.Fatalf("Render(%q) failed: %v", tt.input, err)
		}
		if !strings.Contains(string(got), tt.expected) {
			t.Errorf("Render(%q) = %q, want substring %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	got, err := Render([]byte(src))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := string(got)
	for _, want := range []string{"<table>", "<th>a</th>", "<td>2</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("Render table missing %q: %q", want, html)
		}
	}
}

func TestRenderFencedCodeKeepsLanguageClass(t *testing.T) {
	got, err := Render([]byte("```go\nfmt.Println(1)\n```"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(got), `class="language-go"`) {
		t.Errorf("Render code block = %q, want language class preserved", got)
	}
}

func TestRenderStripsScript(t *testing.T) {
	got, err := Render([]byte("hello\n\n<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(got), "<script") {
		t.Errorf("Render should strip script tags: %q", got)
	}
}

func TestRenderStripsEventHandlers(t *testing.T) {
	got, err := Render([]byte(`<p onclick="evil()">hi</p>`))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(string(got), "onclick") {
		t.Errorf("Render should strip event handlers: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/page", "https://example.com/page"},
		{"http://example.com", "http://example.com"},
		{"/relative/path", "/relative/path"},
		{"#fragment", "#fragment"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html;base64,xxx", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
