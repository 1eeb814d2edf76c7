package docmodel

import (
	"fmt"
	"strings"
)

// Annotate assigns the node's anchor and table of contents number, then
// walks the children. Anchors join ancestor names with "--", lowercased,
// with underscores mapped to hyphens, so they match the link targets the
// renderer emits. Sibling numbers count from 1 in discovery order; a child
// of a numbered node gets "parent.i", a child of an unnumbered node gets a
// bare "i".
func Annotate(n *Node, anchorPrefix, number string) {
	n.Anchor = anchorPrefix + AnchorName(n.Name)
	n.Number = number

	childPrefix := n.Anchor + "--"
	for i, child := range n.Children {
		childNumber := fmt.Sprintf("%d", i+1)
		if number != "" {
			childNumber = number + "." + childNumber
		}
		Annotate(child, childPrefix, childNumber)
	}
}

// AnchorName maps one entity name to its anchor fragment.
func AnchorName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}
