// Package headings extracts the outline of a markdown document: ATX heading
// lines of level 2 to 6 folded into a forest by their levels. Level 1 is the
// page title and is rendered elsewhere, so it never appears in an outline.
package headings

import (
	"regexp"
	"strings"

	"github.com/arterdev/site/internal/doctree"
)

// Outline heading levels. Level 1 is the page title.
const (
	MinLevel = 2
	MaxLevel = 6
)

// The separator class also admits NBSP, vertical tab and other Unicode
// spaces, which editors paste after the markers.
var headingLine = regexp.MustCompile(`^(#{2,6})[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+(.+)$`)

// Record is a heading line found by Scan, before nesting.
type Record struct {
	Level int
	Text  string
	ID    string
	Line  int
}

// Extract returns the heading forest of a markdown document.
func Extract(markdown string) []*doctree.Heading {
	return Nest(Scan(markdown))
}

// Scan returns the heading lines of markdown in document order.
// Lines with one or seven or more '#', or no whitespace after the markers,
// are not headings. A line whose remainder is only whitespace is kept with
// empty Text and ID.
func Scan(markdown string) []Record {
	var records []Record
	lineNum := 0
	for line := range strings.Lines(markdown) {
		lineNum++
		m := headingLine.FindStringSubmatch(strings.TrimSuffix(line, "\n"))
		if m == nil {
			continue
		}
		text := strings.TrimFunc(m[2], isSpace)
		records = append(records, Record{
			Level: len(m[1]),
			Text:  text,
			ID:    Slugify(text),
			Line:  lineNum,
		})
	}
	return records
}

// Nest folds records into a forest.
//
// Each record is compared only against the rightmost spine of the forest
// built so far: it becomes the last child of the deepest spine node with a
// smaller level, or a new root when there is none.
func Nest(records []Record) []*doctree.Heading {
	forest := []*doctree.Heading{}

	// spine[i+1] is the last child of spine[i]; levels strictly increase.
	var spine []*doctree.Heading

	for _, rec := range records {
		node := &doctree.Heading{
			ID:       rec.ID,
			Text:     rec.Text,
			Level:    rec.Level,
			Line:     rec.Line,
			Children: []*doctree.Heading{},
		}

		for len(spine) > 0 && spine[len(spine)-1].Level >= rec.Level {
			spine = spine[:len(spine)-1]
		}

		if len(spine) == 0 {
			forest = append(forest, node)
		} else {
			parent := spine[len(spine)-1]
			parent.Children = append(parent.Children, node)
		}
		spine = append(spine, node)
	}

	return forest
}
