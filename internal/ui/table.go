package ui

import (
	"bytes"

	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

// PrintTable prints rows below the given headers, alternating row colors if color is true.
func PrintTable(headers []string, rows [][]string, color bool) error {
	tableConfig := &table.Config{
		ShowIndex:       false,
		Color:           color,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}

	t := table.Table{
		Headers: headers,
		Rows:    rows,
	}

	var buf bytes.Buffer
	if err := t.WriteTable(&buf, tableConfig); err != nil {
		return err
	}
	Printfln("%s", buf.String())
	return nil
}
