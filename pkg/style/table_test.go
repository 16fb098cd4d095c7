package style

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestTableStyles(t *testing.T) {
	plain := NewPlainTableStyle()
	assert.Equal(t, table.StyleBoxRounded, plain.Box)
	assert.Empty(t, plain.Color.Row)

	colored := NewDefaultTableStyle()
	assert.Equal(t, plain.Box, colored.Box)
	assert.Equal(t, plain.Format, colored.Format)
	assert.Equal(t, text.Colors{text.FgHiYellow, text.BgHiBlack}, colored.Color.Row)
	assert.Equal(t, text.Colors{text.FgYellow, text.BgBlack}, colored.Color.RowAlternate)
	assert.Equal(t, table.ColorOptionsYellowWhiteOnBlack.Header, colored.Color.Header)

	// the colored style must not leak into the plain one
	assert.Empty(t, NewPlainTableStyle().Color.Row)
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTable(&buf, "sizes", table.Row{"Tree", "Size"}, false)
	tw.AppendRow(table.Row{"run", 3})
	tw.Render()

	assert.Contains(t, buf.String(), "sizes")
	assert.Contains(t, buf.String(), "run")
	assert.NotContains(t, buf.String(), "\x1b[")
}
