// markup.go realizes the parsed advice block tree as styled terminal text.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saya-chit/saya/internal/render"
)

// RenderSections renders the block tree of a structured response, one
// styled chunk per section. Warning sections get the alert treatment.
func RenderSections(sections []render.Section, width int) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, renderSection(s, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderSection(s render.Section, width int) string {
	var b strings.Builder

	body := renderBlocks(s.Blocks, width)

	if s.Warning {
		b.WriteString(WarningStyle.Render("⚠ " + s.Title))
		if body != "" {
			b.WriteString("\n")
			b.WriteString(body)
		}
		return WarningBoxStyle.Render(b.String())
	}

	if s.Title != "" {
		b.WriteString(TitleStyle.Render(s.Title))
		if body != "" {
			b.WriteString("\n")
		}
	}
	b.WriteString(body)
	return b.String()
}

func renderBlocks(blocks []render.Block, width int) string {
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		switch v := blk.(type) {
		case render.Paragraph:
			parts = append(parts, wrap(renderSpans(v.Spans), width))
		case render.List:
			parts = append(parts, renderList(v.Items, 0))
		case render.Table:
			parts = append(parts, renderTable(v))
		case render.CodeBlock:
			parts = append(parts, renderCode(v))
		}
	}
	return strings.Join(parts, "\n")
}

func renderSpans(spans []render.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		switch sp.Style {
		case render.SpanBold:
			b.WriteString(BoldStyle.Render(sp.Text))
		case render.SpanItalic:
			b.WriteString(ItalicStyle.Render(sp.Text))
		case render.SpanCode:
			b.WriteString(InlineCodeStyle.Render(sp.Text))
		default:
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

func renderList(items []render.Item, depth int) string {
	indent := strings.Repeat("  ", depth)
	bullet := "•"
	if depth%2 == 1 {
		bullet = "◦"
	}

	var lines []string
	for _, it := range items {
		lines = append(lines, indent+bullet+" "+renderSpans(it.Spans))
		if len(it.Children) > 0 {
			lines = append(lines, renderList(it.Children, depth+1))
		}
	}
	return strings.Join(lines, "\n")
}

// renderTable pads columns to the widest cell. Rows shorter or longer than
// the header are rendered as given.
func renderTable(t render.Table) string {
	var widths []int
	measure := func(cells []render.Cell) {
		for i, c := range cells {
			w := lipgloss.Width(renderSpans(c))
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}

	formatRow := func(cells []render.Cell, header bool) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			text := renderSpans(c)
			if header {
				text = TableHeaderStyle.Render(renderSpans(c))
			}
			pad := 0
			if i < len(widths) {
				pad = widths[i] - lipgloss.Width(text)
			}
			if pad < 0 {
				pad = 0
			}
			parts[i] = text + strings.Repeat(" ", pad)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var lines []string
	lines = append(lines, formatRow(t.Header, true))

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total > 2 {
		lines = append(lines, DimStyle.Render(strings.Repeat("─", total-2)))
	}

	for _, row := range t.Rows {
		lines = append(lines, formatRow(row, false))
	}
	return strings.Join(lines, "\n")
}

func renderCode(c render.CodeBlock) string {
	var b strings.Builder
	if c.Lang != "" {
		b.WriteString(DimStyle.Render(c.Lang))
		b.WriteString("\n")
	}
	b.WriteString(CodeBlockStyle.Render(c.Code))
	return b.String()
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
