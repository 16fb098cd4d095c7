package script

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/bstmap/pkg/style"
)

func RenderResults(w io.Writer, title string, results []Result, color bool) {
	t := style.NewTable(w, title, table.Row{"#", "Op", "Key", "Value", "Count", "Outcome", "Size", "Error"}, color)
	for _, r := range results {
		var key, errStr string
		if r.Op.Keyed() || r.Op == OpMin || r.Op == OpMax {
			key = KeyString(r.Key)
		}

		if r.Error != nil {
			errStr = r.Error.Error()
		}

		var count interface{} = ""
		if r.Op == OpSize || r.Op == OpHeight {
			count = r.Count
		}

		t.AppendRow(table.Row{r.Index, r.Op, key, r.Value, count, r.Outcome(), r.Size, errStr})
	}
	t.Render()
}
