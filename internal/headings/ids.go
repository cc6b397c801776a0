package headings

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// IDs generates goldmark heading ids with Slugify so rendered anchors match
// the ids of an extracted outline. Duplicates are left as-is, like Extract.
type IDs struct{}

var _ parser.IDs = IDs{}

func (IDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(Slugify(string(value)))
}

func (IDs) Put(value []byte) {}
