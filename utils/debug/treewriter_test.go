package debug

import (
	"testing"
)

func TestTreeWriter_Empty(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
	if len(tw.Bytes()) != 0 {
		t.Error("Expected no bytes from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"negative depth", -1, "flat", nil, "flat\n"},
		{"with formatting", 1, "page %d/%d", []any{1, 3}, "  page 1/3\n"},
		{"multiple args", 0, "%s = %d", []any{"count", 5}, "count = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "field", "", "field: \n"},
		{"plain value", 0, "text", "hello world", "text: \"hello world\"\n"},
		{"nested", 2, "content", "資料", "    content: \"資料\"\n"},
		{"multi-line value", 1, "content", "a\nb", "  content: \"a\\nb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Mixed(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "deck")
	tw.Line(1, "slide %d", 1)
	tw.TextBlock(2, "title", "A")

	want := "deck\n  slide 1\n    title: \"A\"\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
