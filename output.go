//go:build !libretro

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/frameloader"
)

// listFilters writes one row per registered filter, columns padded to the
// display width of their widest cell.
func listFilters(w io.Writer) {
	rows := [][]string{{"ID", "NAME", "SCALE", "FORMATS"}}
	for _, d := range filter.Registry() {
		rows = append(rows, []string{
			d.ID(),
			d.Name(),
			strconv.Itoa(filter.Scale(d)) + "x",
			d.InputFormats().String(),
		})
	}
	writeTable(w, rows)
}

func writeTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		for i, cell := range row {
			sb.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-uniseg.StringWidth(cell)+2))
		}
		fmt.Fprintln(w, sb.String())
	}
}

func writePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// pickerExtensions returns the file picker filter: every loadable
// extension without its leading dot.
func pickerExtensions() []string {
	var exts []string
	for _, e := range append(frameloader.ImageExtensions(), frameloader.ArchiveExtensions()...) {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}
	return exts
}
