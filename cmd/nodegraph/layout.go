//go:build !js

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/internal/ui"
)

func layoutCmd(a *app) *cobra.Command {
	var (
		gf  graphFlags
		dot bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the grid layout of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context(), gf)
			if err != nil {
				return err
			}
			if dot {
				return g.WriteDOT(ui.Out)
			}

			opts, err := a.options()
			if err != nil {
				return err
			}
			store := nodegraph.NewStore()
			res, err := nodegraph.Layout(store, g, opts.Layout)
			if err != nil {
				return err
			}
			printLayout(store, res, g)
			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().BoolVar(&dot, "dot", false, "Print the graph in Graphviz DOT syntax instead")
	return cmd
}

func printLayout(store *nodegraph.Store, res nodegraph.LayoutResult, g nodegraph.Graph) {
	ui.Banner("grid layout")

	rows := make([][]string, 0, len(res.Order))
	for i, e := range res.Order {
		label := store.Label(e)
		b := store.Bounds(e)
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.FormatInt(label.ID, 10),
			label.Text,
			fmt.Sprintf("%g,%g", b.X, b.Y),
			fmt.Sprintf("%gx%g", b.Width, b.Height),
		})
	}
	ui.Table([]string{"CELL", "ID", "LABEL", "AT", "SIZE"}, rows, func(row, col int, cell string) string {
		switch {
		case row == 0 && col == 1:
			return ui.Brand.Sprint(cell)
		case col == 0:
			return ui.Subtle.Sprint(cell)
		}
		return cell
	})

	fmt.Fprintln(ui.Out)
	fmt.Fprintf(ui.Out, "  %s  %d of %d\n", ui.Brand.Sprintf("%-10s", "Nodes"), len(res.Order), len(g.Nodes))
	fmt.Fprintf(ui.Out, "  %s  %d of %d\n", ui.Brand.Sprintf("%-10s", "Edges"), len(res.Edges), len(g.Edges))
	if len(res.Omitted) > 0 {
		ids := make([]string, len(res.Omitted))
		for i, id := range res.Omitted {
			ids[i] = strconv.FormatInt(id, 10)
		}
		ui.Warn.Fprintf(ui.Out, "  %-10s  %v (unreachable from the root)\n", "Omitted", ids)
	}
}
