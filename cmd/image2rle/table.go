package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"image2rle/internal/textutil"
)

type inspectColumn struct {
	title string
	align text.Align
	value func(inspectRow) string
}

var inspectColumns = []inspectColumn{
	{"Pattern", text.AlignLeft, func(r inspectRow) string { return r.Path }},
	{"Width", text.AlignRight, func(r inspectRow) string { return strconv.Itoa(r.Width) }},
	{"Height", text.AlignRight, func(r inspectRow) string { return strconv.Itoa(r.Height) }},
	{"Alive", text.AlignRight, func(r inspectRow) string { return textutil.FormatCount(r.Population) }},
	{"Density", text.AlignRight, func(r inspectRow) string { return textutil.Percent(r.Population, r.Width*r.Height) }},
	{"Source", text.AlignLeft, func(r inspectRow) string { return textutil.OrDash(r.Source) }},
}

// renderInspectTable lays rows out one pattern per line. Unreadable patterns
// keep their path and show the error in the last column.
func renderInspectTable(rows []inspectRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := make(table.Row, len(inspectColumns))
	configs := make([]table.ColumnConfig, len(inspectColumns))
	for i, col := range inspectColumns {
		header[i] = col.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: col.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	var cells, alive, readable int
	for _, row := range rows {
		line := make(table.Row, len(inspectColumns))
		if row.Error != "" {
			line[0] = row.Path
			for i := 1; i < len(line)-1; i++ {
				line[i] = "-"
			}
			line[len(line)-1] = row.Error
			tw.AppendRow(line)
			continue
		}
		for i, col := range inspectColumns {
			line[i] = col.value(row)
		}
		tw.AppendRow(line)
		readable++
		cells += row.Width * row.Height
		alive += row.Population
	}

	if len(rows) > 1 {
		tw.AppendFooter(table.Row{
			textutil.FormatCount(readable) + " readable", "", "",
			textutil.FormatCount(alive), textutil.Percent(alive, cells), "",
		})
	}
	return tw.Render()
}
