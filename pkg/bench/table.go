package bench

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/bstmap/pkg/style"
)

func RenderStats(w io.Writer, stats *Stats, color bool) {
	title := fmt.Sprintf("%s order, seed %d, size %d, height %d (peak %d)",
		stats.Order, stats.Seed, stats.Size, stats.Height, stats.PeakHeight)

	t := style.NewTable(w, title, table.Row{"Phase", "Ops", "Duration", "Per Op"}, color)
	for _, p := range stats.Phases {
		t.AppendRow(table.Row{p.Name, p.Ops, p.Duration, p.PerOp()})
	}
	t.Render()
}
