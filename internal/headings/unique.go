package headings

import (
	"fmt"

	"github.com/arterdev/site/internal/doctree"
)

// UniqueIDs returns a copy of forest in which repeated IDs get a numeric
// suffix ("setup", "setup-1", "setup-2") in document order. The input forest
// is not modified. Empty IDs become "section".
func UniqueIDs(forest []*doctree.Heading) []*doctree.Heading {
	seen := map[string]int{}
	return uniqueCopy(forest, seen)
}

func uniqueCopy(nodes []*doctree.Heading, seen map[string]int) []*doctree.Heading {
	out := make([]*doctree.Heading, 0, len(nodes))
	for _, h := range nodes {
		cp := *h
		cp.ID = ensureUnique(h.ID, seen)
		cp.Children = uniqueCopy(h.Children, seen)
		out = append(out, &cp)
	}
	return out
}

func ensureUnique(id string, seen map[string]int) string {
	if id == "" {
		id = "section"
	}
	base, n := id, seen[id]
	for {
		if _, taken := seen[id]; !taken {
			break
		}
		n++
		id = fmt.Sprintf("%s-%d", base, n)
	}
	seen[base] = n
	seen[id] = 0
	return id
}
