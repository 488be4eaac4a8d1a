package nodegraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes g in Graphviz DOT syntax. Nodes are labeled with their
// label, or their id when the label is empty; edges carry no label. The
// root node is drawn with a double border.
func (g Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	for _, n := range g.Nodes {
		label := n.Label
		if label == "" {
			label = strconv.FormatInt(n.ID, 10)
		}
		attrs := "label = " + strconv.Quote(label)
		if n.IsRoot {
			attrs += ", peripheries = 2"
		}
		fmt.Fprintf(bw, "    %d [ %s ]\n", n.ID, attrs)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "    %d -> %d [ ]\n", e.Left, e.Right)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
