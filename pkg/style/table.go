package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewPlainTableStyle is the rounded box layout without colors, for output
// that is not a terminal.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Name = "StylePlain"
	return &style
}

// NewDefaultTableStyle is the plain layout with yellow rows on a dark
// background, alternating shades.
func NewDefaultTableStyle() *table.Style {
	style := NewPlainTableStyle()
	style.Name = "StyleRounded"
	style.Color = table.ColorOptionsYellowWhiteOnBlack
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return style
}

// NewTable prepares a table writer rendering to w. Call Render on the
// returned writer after appending the rows.
func NewTable(w io.Writer, title string, header table.Row, color bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(header)
	if color {
		t.SetStyle(*NewDefaultTableStyle())
	} else {
		t.SetStyle(*NewPlainTableStyle())
	}
	return t
}
