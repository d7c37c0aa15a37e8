// Package render parses the sectioned-markdown dialect produced by the
// advice generator into a typed block tree. Parsing is pure and
// deterministic; terminal realization lives in the TUI layer.
package render

import (
	"regexp"
	"strings"
)

// warningMarker flags a section as a safety warning when present in its
// title. The glyph form is stripped from the displayed title.
const (
	warningMarker = "အထူးသတိပေးချက်"
	warningGlyph  = "⚠️"
)

// Section is one heading-introduced chunk of the response.
type Section struct {
	Level   int    // number of '#' markers, 0 for an untitled section
	Title   string // heading text with the warning glyph stripped
	Warning bool
	Blocks  []Block
}

// Block is a closed set of body block types: Paragraph, List, Table and
// CodeBlock.
type Block interface {
	block()
}

// Paragraph is a plain text block with inline emphasis applied.
type Paragraph struct {
	Spans []Span
}

// List is a (possibly nested) bullet list.
type List struct {
	Items []Item
}

// Item is one list entry; indented follow-on bullets become Children.
type Item struct {
	Spans    []Span
	Children []Item
}

// Table is a pipe table. Row lengths may differ from the header; they are
// rendered as given.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// Cell is one table cell with inline emphasis applied.
type Cell []Span

// CodeBlock is a fenced block rendered verbatim.
type CodeBlock struct {
	Lang string
	Code string
}

func (Paragraph) block() {}
func (List) block()      {}
func (Table) block()     {}
func (CodeBlock) block() {}

var (
	headingRe = regexp.MustCompile(`^(#+)\s+(.*)$`)
	bulletRe  = regexp.MustCompile(`^[-*+]\s+`)
	// ruleRe matches a table horizontal-rule line: dashes, colons, pipes
	// and spaces only, with at least one dash.
	ruleRe = regexp.MustCompile(`^[\s|:-]+$`)
	fence  = "```"
)

// Parse splits the input into sections and classifies each section body
// into typed blocks. Input with no heading at all yields a single untitled
// section.
func Parse(content string) []Section {
	var sections []Section
	for _, chunk := range splitSections(content) {
		sections = append(sections, parseSection(chunk))
	}
	return sections
}

// splitSections breaks the input on newline boundaries that precede a
// heading line, trims the chunks, and drops empty ones.
func splitSections(content string) []string {
	lines := strings.Split(content, "\n")
	var chunks []string
	var current []string

	flush := func() {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current = current[:0]
	}

	for _, line := range lines {
		if headingRe.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func parseSection(chunk string) Section {
	m := headingRe.FindStringSubmatch(firstLine(chunk))
	if m == nil {
		return Section{Blocks: parseBody(chunk)}
	}

	title := strings.TrimSpace(m[2])
	warning := strings.Contains(title, warningMarker) || strings.Contains(title, warningGlyph)
	title = strings.TrimSpace(strings.ReplaceAll(title, warningGlyph, ""))

	body := strings.TrimSpace(chunk[len(m[0]):])
	return Section{
		Level:   len(m[1]),
		Title:   title,
		Warning: warning,
		Blocks:  parseBody(body),
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// parseBody splits a section body into sub-blocks and classifies each one
// independently. Fenced code is carved out first so blank lines inside a
// fence do not split it; the remainder splits on blank lines. Classifying
// per sub-block keeps a trailing paragraph from being swallowed by a
// leading list.
func parseBody(body string) []Block {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var blocks []Block
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, classify(current))
		current = current[:0]
	}

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fence) {
			flush()
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
			var code []string
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(strings.TrimSpace(lines[i]), fence) {
					break
				}
				code = append(code, lines[i])
			}
			blocks = append(blocks, CodeBlock{Lang: lang, Code: strings.Join(code, "\n")})
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

// classify decides what a blank-line-delimited sub-block is. Order
// matters: table before list before paragraph.
func classify(lines []string) Block {
	if t, ok := parseTable(lines); ok {
		return t
	}
	if l, ok := parseList(lines); ok {
		return l
	}
	return Paragraph{Spans: Inline(strings.Join(lines, "\n"))}
}

// parseTable accepts a sub-block whose first line contains a pipe and which
// carries a horizontal-rule line. A single table-like line is not a table.
func parseTable(lines []string) (Table, bool) {
	if len(lines) < 2 {
		return Table{}, false
	}
	if !strings.Contains(lines[0], "|") {
		return Table{}, false
	}
	hasRule := false
	for _, line := range lines[1:] {
		if isRuleLine(line) {
			hasRule = true
			break
		}
	}
	if !hasRule {
		return Table{}, false
	}

	t := Table{Header: splitCells(lines[0])}
	for _, line := range lines[1:] {
		if isRuleLine(line) {
			continue
		}
		t.Rows = append(t.Rows, splitCells(line))
	}
	return t, true
}

func isRuleLine(line string) bool {
	return strings.Contains(line, "-") && ruleRe.MatchString(line)
}

// splitCells splits a table row on pipes, trimming each cell and dropping
// the empty leading/trailing cells produced by outer pipes.
func splitCells(line string) []Cell {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]Cell, len(parts))
	for i, p := range parts {
		cells[i] = Cell(Inline(strings.TrimSpace(p)))
	}
	return cells
}

// parseList accepts a sub-block only when every line, ignoring indentation,
// starts with a bullet marker. Indentation is grouped in 2-space
// increments; a deeper run nests under the preceding item. Nesting is
// relative to the shallowest bullet in the sub-block, so an over-indented
// opening line cannot orphan the entries that follow it.
func parseList(lines []string) (List, bool) {
	type entry struct {
		depth int
		text  string
	}
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if !bulletRe.MatchString(stripped) {
			return List{}, false
		}
		entries = append(entries, entry{
			depth: indentDepth(line[:len(line)-len(stripped)]),
			text:  bulletRe.ReplaceAllString(stripped, ""),
		})
	}

	var build func(pos *int, depth int) []Item
	build = func(pos *int, depth int) []Item {
		var items []Item
		for *pos < len(entries) {
			e := entries[*pos]
			switch {
			case e.depth < depth:
				return items
			case e.depth > depth && len(items) > 0:
				children := build(pos, e.depth)
				items[len(items)-1].Children = append(items[len(items)-1].Children, children...)
			default:
				// An over-indented first line is treated as depth-level.
				items = append(items, Item{Spans: Inline(e.text)})
				*pos++
			}
		}
		return items
	}

	base := entries[0].depth
	for _, e := range entries[1:] {
		if e.depth < base {
			base = e.depth
		}
	}

	pos := 0
	return List{Items: build(&pos, base)}, true
}

// indentDepth maps a leading-whitespace run to a nesting level. Tabs count
// as one level; spaces group in 2-space increments.
func indentDepth(ws string) int {
	depth := 0
	spaces := 0
	for _, r := range ws {
		if r == '\t' {
			depth++
			continue
		}
		spaces++
	}
	return depth + spaces/2
}
