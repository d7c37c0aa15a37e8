// inline.go applies inline emphasis and sanitizes producer text. The
// generator is only semi-trusted, so control characters and terminal escape
// sequences are stripped before anything reaches the display surface.
package render

import (
	"regexp"
	"strings"
)

// SpanStyle is the emphasis applied to a span of text.
type SpanStyle int

const (
	SpanPlain SpanStyle = iota
	SpanBold
	SpanItalic
	SpanCode
)

// Span is a run of text with a single emphasis style.
type Span struct {
	Text  string
	Style SpanStyle
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// sanitize removes ANSI escape sequences and control characters (newlines
// and tabs excepted) from producer text.
func sanitize(s string) string {
	s = ansiRe.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// Inline parses emphasis markers into spans: backtick spans as inline code,
// double-asterisk as bold, single-asterisk as italic. Unterminated markers
// stay literal text.
func Inline(text string) []Span {
	rs := []rune(sanitize(text))

	var spans []Span
	var plain []rune
	flush := func() {
		if len(plain) > 0 {
			spans = append(spans, Span{Text: string(plain)})
			plain = plain[:0]
		}
	}

	for i := 0; i < len(rs); {
		switch {
		case rs[i] == '`':
			if j := runeIndex(rs, i+1, '`'); j > i {
				flush()
				spans = append(spans, Span{Text: string(rs[i+1 : j]), Style: SpanCode})
				i = j + 1
				continue
			}
		case rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '*':
			if j := pairIndex(rs, i+2); j > i {
				flush()
				spans = append(spans, Span{Text: string(rs[i+2 : j]), Style: SpanBold})
				i = j + 2
				continue
			}
		case rs[i] == '*':
			if j := runeIndex(rs, i+1, '*'); j > i+1 {
				flush()
				spans = append(spans, Span{Text: string(rs[i+1 : j]), Style: SpanItalic})
				i = j + 1
				continue
			}
		}
		plain = append(plain, rs[i])
		i++
	}
	flush()
	return spans
}

// runeIndex returns the index of the next occurrence of r at or after from,
// or -1.
func runeIndex(rs []rune, from int, r rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == r {
			return i
		}
	}
	return -1
}

// pairIndex returns the index of the next "**" at or after from, or -1.
func pairIndex(rs []rune, from int) int {
	for i := from; i+1 < len(rs); i++ {
		if rs[i] == '*' && rs[i+1] == '*' {
			return i
		}
	}
	return -1
}
