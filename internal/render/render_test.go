package render

import "testing"

func plainText(spans []Span) string {
	var s string
	for _, sp := range spans {
		s += sp.Text
	}
	return s
}

func TestParseHeadingAndList(t *testing.T) {
	sections := Parse("# ဆေးအကြံပြုချက်\n- ပထမ\n- ဒုတိယ")

	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	s := sections[0]
	if s.Level != 1 || s.Title != "ဆေးအကြံပြုချက်" || s.Warning {
		t.Errorf("section header = %+v, want level-1 non-warning title", s)
	}
	if len(s.Blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(s.Blocks))
	}
	list, ok := s.Blocks[0].(List)
	if !ok {
		t.Fatalf("block = %T, want List", s.Blocks[0])
	}
	if len(list.Items) != 2 || plainText(list.Items[0].Spans) != "ပထမ" {
		t.Errorf("list = %+v, want two items", list)
	}
}

func TestParseWarningSection(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		title   string
	}{
		{"marker text", "## အထူးသတိပေးချက်", "အထူးသတိပေးချက်"},
		{"glyph", "## ⚠️ သတိပြုရန်", "သတိပြုရန်"},
		{"marker and glyph", "## အထူးသတိပေးချက် ⚠️", "အထူးသတိပေးချက်"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Parse(tt.heading + "\nစာကိုယ်")
			if len(sections) != 1 {
				t.Fatalf("len(sections) = %d, want 1", len(sections))
			}
			if !sections[0].Warning {
				t.Error("Warning = false")
			}
			if sections[0].Title != tt.title {
				t.Errorf("Title = %q, want %q", sections[0].Title, tt.title)
			}
		})
	}
}

func TestParseUntitledSection(t *testing.T) {
	sections := Parse("just a paragraph with no heading")

	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if sections[0].Level != 0 || sections[0].Title != "" {
		t.Errorf("section = %+v, want untitled", sections[0])
	}
	if _, ok := sections[0].Blocks[0].(Paragraph); !ok {
		t.Errorf("block = %T, want Paragraph", sections[0].Blocks[0])
	}
}

func TestParseMultipleSections(t *testing.T) {
	input := "intro text\n# First\nbody one\n## Second\nbody two"
	sections := Parse(input)

	if len(sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(sections))
	}
	if sections[0].Level != 0 {
		t.Errorf("sections[0].Level = %d, want 0 (leading untitled chunk)", sections[0].Level)
	}
	if sections[1].Title != "First" || sections[1].Level != 1 {
		t.Errorf("sections[1] = %+v", sections[1])
	}
	if sections[2].Title != "Second" || sections[2].Level != 2 {
		t.Errorf("sections[2] = %+v", sections[2])
	}
}

func TestParseTable(t *testing.T) {
	sections := Parse("ဆေး|ပမာဏ\n--|--\nParacetamol|500mg\nIbuprofen|200mg")

	tbl, ok := sections[0].Blocks[0].(Table)
	if !ok {
		t.Fatalf("block = %T, want Table", sections[0].Blocks[0])
	}
	if len(tbl.Header) != 2 || plainText(tbl.Header[0]) != "ဆေး" {
		t.Errorf("header = %+v", tbl.Header)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2 (rule line dropped)", len(tbl.Rows))
	}
	if plainText(tbl.Rows[1][1]) != "200mg" {
		t.Errorf("rows[1][1] = %q, want %q", plainText(tbl.Rows[1][1]), "200mg")
	}
}

func TestParseTableOuterPipes(t *testing.T) {
	sections := Parse("| A | B |\n|---|---|\n| 1 | 2 |")

	tbl, ok := sections[0].Blocks[0].(Table)
	if !ok {
		t.Fatalf("block = %T, want Table", sections[0].Blocks[0])
	}
	if len(tbl.Header) != 2 {
		t.Fatalf("len(header) = %d, want 2 (outer pipes dropped)", len(tbl.Header))
	}
	if plainText(tbl.Rows[0][0]) != "1" || plainText(tbl.Rows[0][1]) != "2" {
		t.Errorf("rows[0] = %+v, want trimmed cells", tbl.Rows[0])
	}
}

func TestSingleTableLikeLineIsParagraph(t *testing.T) {
	sections := Parse("ဆေး|ပမာဏ|အကြိမ်")

	if _, ok := sections[0].Blocks[0].(Paragraph); !ok {
		t.Errorf("block = %T, want Paragraph (no rule line)", sections[0].Blocks[0])
	}
}

func TestParseMixedBody(t *testing.T) {
	input := "# အကြံပြုချက်\nလေ့လာချက် စာပိုဒ်။\n\n- ပထမ\n- ဒုတိယ\n\nနောက်ဆုံး စာပိုဒ်။"
	sections := Parse(input)

	blocks := sections[0].Blocks
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}
	if _, ok := blocks[0].(Paragraph); !ok {
		t.Errorf("blocks[0] = %T, want Paragraph", blocks[0])
	}
	if _, ok := blocks[1].(List); !ok {
		t.Errorf("blocks[1] = %T, want List", blocks[1])
	}
	if _, ok := blocks[2].(Paragraph); !ok {
		t.Errorf("blocks[2] = %T, want Paragraph", blocks[2])
	}
}

func TestParseNestedList(t *testing.T) {
	sections := Parse("- parent\n  - child one\n  - child two\n- sibling")

	list := sections[0].Blocks[0].(List)
	if len(list.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(list.Items))
	}
	if len(list.Items[0].Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(list.Items[0].Children))
	}
	if plainText(list.Items[0].Children[1].Spans) != "child two" {
		t.Errorf("child = %q", plainText(list.Items[0].Children[1].Spans))
	}
	if len(list.Items[1].Children) != 0 {
		t.Errorf("sibling gained children: %+v", list.Items[1])
	}
}

func TestParseListIndentedFirstBullet(t *testing.T) {
	sections := Parse("# ဆေးအကြံပြုချက်\nစာပိုဒ်\n\n  - ပထမ\n- ဒုတိယ")

	blocks := sections[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	list, ok := blocks[1].(List)
	if !ok {
		t.Fatalf("blocks[1] = %T, want List", blocks[1])
	}
	if len(list.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (shallower bullet must not be dropped)", len(list.Items))
	}
	if plainText(list.Items[0].Spans) != "ပထမ" || plainText(list.Items[1].Spans) != "ဒုတိယ" {
		t.Errorf("items = %+v, want both bullets at the top level", list.Items)
	}
	if len(list.Items[0].Children) != 0 {
		t.Errorf("items[0].Children = %+v, want none", list.Items[0].Children)
	}
}

func TestParseListDeepFirstThenShallow(t *testing.T) {
	sections := Parse("    - နက်သော\n  - အလယ်\n- အပေါ်ဆုံး")

	list, ok := sections[0].Blocks[0].(List)
	if !ok {
		t.Fatalf("block = %T, want List", sections[0].Blocks[0])
	}

	var count func(items []Item) int
	count = func(items []Item) int {
		n := len(items)
		for _, it := range items {
			n += count(it.Children)
		}
		return n
	}
	if got := count(list.Items); got != 3 {
		t.Errorf("total items = %d, want 3 (no entry may be dropped)", got)
	}
	last := list.Items[len(list.Items)-1]
	if plainText(last.Spans) != "အပေါ်ဆုံး" {
		t.Errorf("last top-level item = %q, want the shallowest bullet", plainText(last.Spans))
	}
}

func TestParseListMarkers(t *testing.T) {
	sections := Parse("- dash\n* star\n+ plus")

	list, ok := sections[0].Blocks[0].(List)
	if !ok {
		t.Fatalf("block = %T, want List", sections[0].Blocks[0])
	}
	if len(list.Items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(list.Items))
	}
}

func TestParseCodeBlock(t *testing.T) {
	input := "```text\nfirst line\n\nafter blank\n```"
	sections := Parse(input)

	cb, ok := sections[0].Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("block = %T, want CodeBlock", sections[0].Blocks[0])
	}
	if cb.Lang != "text" {
		t.Errorf("Lang = %q, want %q", cb.Lang, "text")
	}
	if cb.Code != "first line\n\nafter blank" {
		t.Errorf("Code = %q (blank line must not split the fence)", cb.Code)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if sections := Parse(""); len(sections) != 0 {
		t.Errorf("Parse(\"\") = %+v, want no sections", sections)
	}
	if sections := Parse("   \n\n  "); len(sections) != 0 {
		t.Errorf("Parse(whitespace) = %+v, want no sections", sections)
	}
}

func TestIndentDepth(t *testing.T) {
	tests := []struct {
		ws   string
		want int
	}{
		{"", 0},
		{" ", 0},
		{"  ", 1},
		{"    ", 2},
		{"\t", 1},
		{"\t  ", 2},
	}
	for _, tt := range tests {
		if got := indentDepth(tt.ws); got != tt.want {
			t.Errorf("indentDepth(%q) = %d, want %d", tt.ws, got, tt.want)
		}
	}
}
