package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/cexio/pkg/fixedpoint"
	"github.com/c9s/cexio/pkg/types"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewTable returns a table writer with the default style that renders to out.
func NewTable(out io.Writer, title string, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(*NewDefaultTableStyle())
	if title != "" {
		t.SetTitle(title)
	}
	if len(header) > 0 {
		t.AppendHeader(header)
	}
	return t
}

func SideColor(side types.SideType) text.Colors {
	if side == types.SideTypeBuy {
		return text.Colors{text.FgHiGreen}
	}
	return text.Colors{text.FgHiRed}
}

func SideString(side types.SideType) string {
	return SideColor(side).Sprint(side.String())
}

// OptionalValue renders nil values as a dash.
func OptionalValue(v *fixedpoint.Value) string {
	if v == nil {
		return "-"
	}
	return v.String()
}
