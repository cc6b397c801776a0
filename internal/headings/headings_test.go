package headings

import (
	"strings"
	"testing"

	"github.com/arterdev/site/internal/doctree"
)

// shape renders a forest as "A[B,C],D" for compact comparisons.
func shape(forest []*doctree.Heading) string {
	parts := make([]string, 0, len(forest))
	for _, h := range forest {
		s := h.Text
		if len(h.Children) > 0 {
			s += "[" + shape(h.Children) + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}

func TestExtract_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"siblings under parent", "## A\n### B\n### C\n## D", "A[B,C],D"},
		{"skipped level nests under nearest", "## A\n#### B\n## C", "A[B],C"},
		{"shallower heading becomes root", "### A\n## B", "A,B"},
		{"no headings", "just text\nmore text", ""},
		{"h1 excluded", "# Title\n## Sub", "Sub"},
		{"single level is flat", "### A\n### B\n### C", "A,B,C"},
		{"deep chain", "## A\n### B\n#### C\n##### D\n###### E", "A[B[C[D[E]]]]"},
		{"spine only", "## A\n#### B\n### C\n#### D", "A[B,C[D]]"},
		{"h2 after h4 is root", "### A\n#### B\n## C\n### D", "A[B],C[D]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shape(Extract(tt.input))
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtract_EmptyForestIsNotNil(t *testing.T) {
	forest := Extract("")
	if forest == nil {
		t.Fatal("expected empty non-nil forest")
	}
	if len(forest) != 0 {
		t.Errorf("expected 0 roots, got %d", len(forest))
	}
}

func TestExtract_Fields(t *testing.T) {
	forest := Extract("intro\n\n## Hello, World!  \n\n### Step *one*\n")
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	root := forest[0]
	if root.Text != "Hello, World!" {
		t.Errorf("expected text %q, got %q", "Hello, World!", root.Text)
	}
	if root.ID != "hello-world" {
		t.Errorf("expected id %q, got %q", "hello-world", root.ID)
	}
	if root.Level != 2 || root.Line != 3 {
		t.Errorf("expected level 2 at line 3, got level %d at line %d", root.Level, root.Line)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	child := root.Children[0]
	if child.Text != "Step *one*" {
		t.Errorf("expected markup kept in %q, got %q", "Step *one*", child.Text)
	}
	if child.ID != "step-one" {
		t.Errorf("expected id %q, got %q", "step-one", child.ID)
	}
	if child.Children == nil {
		t.Error("expected leaf children to be an empty slice, got nil")
	}
}

func TestScan_Malformed(t *testing.T) {
	input := strings.Join([]string{
		"#",
		"##",
		"##NoSpace",
		"####### Seven",
		"##   ",
		" ## indented",
		"## Valid",
		"###### Six",
	}, "\n")

	records := Scan(input)
	want := []struct {
		level int
		text  string
		id    string
	}{
		{2, "", ""},
		{2, "Valid", "valid"},
		{6, "Six", "six"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d: %+v", len(want), len(records), records)
	}
	for i, w := range want {
		r := records[i]
		if r.Level != w.level || r.Text != w.text || r.ID != w.id {
			t.Errorf("record %d: expected level-%d %q (%q), got level-%d %q (%q)",
				i, w.level, w.text, w.id, r.Level, r.Text, r.ID)
		}
	}
}

func TestScan_BlankHeadingKept(t *testing.T) {
	records := Scan("## A\n##   ")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[1].Text != "" || records[1].ID != "" || records[1].Line != 2 {
		t.Errorf("expected empty heading on line 2, got %+v", records[1])
	}

	forest := UniqueIDs(Extract("## A\n##   "))
	if len(forest) != 2 || forest[1].ID != "section" {
		t.Errorf("expected blank heading to get id %q, got %+v", "section", forest)
	}
}

func TestScan_UnicodeSeparators(t *testing.T) {
	tests := []struct {
		in   string
		text string
	}{
		{"##\u00a0Title", "Title"},
		{"##\vTitle", "Title"},
		{"###\u3000Title\u00a0", "Title"},
		{"##\uFEFFTitle", "Title"},
	}
	for _, tt := range tests {
		records := Scan(tt.in)
		if len(records) != 1 {
			t.Errorf("Scan(%q): expected 1 record, got %d", tt.in, len(records))
			continue
		}
		if records[0].Text != tt.text || records[0].ID != "title" {
			t.Errorf("Scan(%q): expected %q/%q, got %q/%q", tt.in, tt.text, "title", records[0].Text, records[0].ID)
		}
	}
}

func TestScan_InvalidUTF8(t *testing.T) {
	records := Scan("## \xff\xfe\n### ok \xff")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].Level != 2 || records[0].Text != "\xff\xfe" || records[0].ID != "" {
		t.Errorf("expected level-2 raw text with empty id, got %+v", records[0])
	}
	if records[1].ID != "ok" {
		t.Errorf("expected id %q, got %q", "ok", records[1].ID)
	}
}

func TestScan_LongLine(t *testing.T) {
	body := strings.Repeat("a", 1<<20)
	records := Scan("## " + body + "\n## tail")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if len(records[0].ID) != len(body) || records[0].ID != body {
		t.Errorf("expected id of length %d, got %d", len(body), len(records[0].ID))
	}
	if records[1].Line != 2 {
		t.Errorf("expected tail on line 2, got %d", records[1].Line)
	}
}

func TestScan_CRLF(t *testing.T) {
	records := Scan("## One\r\n### Two\r\n")
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Text != "One" || records[1].Text != "Two" {
		t.Errorf("expected trimmed texts, got %q and %q", records[0].Text, records[1].Text)
	}
}

func TestExtract_DuplicateIDsKept(t *testing.T) {
	forest := Extract("## Setup\n## Setup!\n")
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].ID != "setup" || forest[1].ID != "setup" {
		t.Errorf("expected both ids %q, got %q and %q", "setup", forest[0].ID, forest[1].ID)
	}
}

func TestExtract_Properties(t *testing.T) {
	inputs := []string{
		"## A\n### B\n### C\n## D",
		"###### deep\n## shallow\n#### mid\n### upper\n##### low",
		"# T\n## a\n#### b\n### c\n## d\n### e\n###### f\n### g",
		"text\n```\n## in code\n```\n## after",
	}
	for _, input := range inputs {
		forest := Extract(input)

		doctree.Walk(forest, func(h *doctree.Heading, _ int) bool {
			for _, c := range h.Children {
				if c.Level <= h.Level {
					t.Errorf("child %q level %d not greater than parent %q level %d", c.Text, c.Level, h.Text, h.Level)
				}
			}
			return true
		})

		flat := doctree.Flatten(forest)
		records := Scan(input)
		if len(flat) != len(records) {
			t.Fatalf("expected %d flattened headings, got %d", len(records), len(flat))
		}
		for i, rec := range records {
			if flat[i].Text != rec.Text || flat[i].Level != rec.Level {
				t.Errorf("position %d: expected %q (h%d), got %q (h%d)", i, rec.Text, rec.Level, flat[i].Text, flat[i].Level)
			}
		}

		if again := shape(Extract(input)); again != shape(forest) {
			t.Errorf("expected identical forest on re-run, got %q and %q", shape(forest), again)
		}
	}
}

func TestNest_DoesNotShareNodes(t *testing.T) {
	forest := Nest([]Record{{Level: 2, Text: "A"}, {Level: 3, Text: "B"}, {Level: 2, Text: "C"}, {Level: 3, Text: "D"}})
	seen := map[*doctree.Heading]bool{}
	doctree.Walk(forest, func(h *doctree.Heading, _ int) bool {
		if seen[h] {
			t.Errorf("heading %q reachable twice", h.Text)
		}
		seen[h] = true
		return true
	})
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct headings, got %d", len(seen))
	}
}
