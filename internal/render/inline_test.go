package render

import (
	"reflect"
	"testing"
)

func TestInlineEmphasis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "plain text",
			input: "just text",
			want:  []Span{{Text: "just text"}},
		},
		{
			name:  "bold",
			input: "take **500mg** daily",
			want: []Span{
				{Text: "take "},
				{Text: "500mg", Style: SpanBold},
				{Text: " daily"},
			},
		},
		{
			name:  "italic",
			input: "take *with food*",
			want: []Span{
				{Text: "take "},
				{Text: "with food", Style: SpanItalic},
			},
		},
		{
			name:  "inline code",
			input: "use `paracetamol` only",
			want: []Span{
				{Text: "use "},
				{Text: "paracetamol", Style: SpanCode},
				{Text: " only"},
			},
		},
		{
			name:  "mixed styles",
			input: "**bold** and *italic* and `code`",
			want: []Span{
				{Text: "bold", Style: SpanBold},
				{Text: " and "},
				{Text: "italic", Style: SpanItalic},
				{Text: " and "},
				{Text: "code", Style: SpanCode},
			},
		},
		{
			name:  "unterminated bold stays literal",
			input: "**oops",
			want:  []Span{{Text: "**oops"}},
		},
		{
			name:  "unterminated backtick stays literal",
			input: "`oops",
			want:  []Span{{Text: "`oops"}},
		},
		{
			name:  "lone asterisk stays literal",
			input: "2 * 3",
			want:  []Span{{Text: "2 * 3"}},
		},
		{
			name:  "burmese bold",
			input: "**သတိပြုရန်** ဖြစ်သည်",
			want: []Span{
				{Text: "သတိပြုရန်", Style: SpanBold},
				{Text: " ဖြစ်သည်"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inline(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Inline(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeStripsEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ansi color", "safe\x1b[31mred\x1b[0m text", "safered text"},
		{"cursor movement", "a\x1b[2Jb", "ab"},
		{"control characters", "a\x00b\x07c", "abc"},
		{"delete character", "a\x7fb", "ab"},
		{"keeps newline and tab", "a\nb\tc", "a\nb\tc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize(tt.input); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInlineSanitizesBeforeParsing(t *testing.T) {
	got := Inline("**bo\x1b[31mld**")
	want := []Span{{Text: "bold", Style: SpanBold}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Inline() = %+v, want %+v", got, want)
	}
}
