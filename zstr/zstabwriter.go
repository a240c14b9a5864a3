package zstr

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

// TabWriter buffers tab separated lines and writes them as aligned columns on Flush.
// Color escape codes don't count towards column widths.
type TabWriter struct {
	MaxColumnWidth      int
	CellDivider         string
	RighAdjustedColumns map[int]bool
	MaxColumnWidths     map[int]int
	buffer              bytes.Buffer
	out                 io.Writer
}

func NewTabWriter(out io.Writer) *TabWriter {
	t := &TabWriter{}
	t.out = out
	t.CellDivider = "  "
	t.RighAdjustedColumns = map[int]bool{}
	t.MaxColumnWidths = map[int]int{}
	return t
}

func (t *TabWriter) Write(b []byte) (n int, err error) {
	return t.buffer.Write(b)
}

func (t *TabWriter) Flush() error {
	var widths []int
	allOutput := t.buffer.String()
	t.buffer.Reset()
	RangeStringLines(allOutput, true, func(sline string) bool {
		sline = strings.TrimRight(sline, "\t")
		for i, cell := range strings.Split(sline, "\t") {
			if len(widths)-1 < i {
				widths = append(widths, 0)
			}
			clen := utf8.RuneCountInString(ColorRemover.Replace(cell))
			widths[i] = max(widths[i], clen)
		}
		return true
	})
	for i := range widths {
		m := t.MaxColumnWidths[i]
		if m == 0 {
			m = t.MaxColumnWidth
		}
		if m != 0 {
			widths[i] = min(widths[i], m)
		}
	}
	var err error
	RangeStringLines(allOutput, true, func(sline string) bool {
		sline = strings.TrimRight(sline, "\t")
		_, err = io.WriteString(t.out, t.makeLine(sline, widths)+"\n")
		return err == nil
	})
	return err
}

func (t *TabWriter) makeLine(sline string, widths []int) string {
	var outLine string
	for i, cell := range strings.Split(sline, "\t") {
		width := widths[i]
		visible := ColorRemover.Replace(cell)
		vlen := utf8.RuneCountInString(visible)
		if vlen > width {
			cell = string([]rune(visible)[:width])
			vlen = width
		}
		if i != 0 {
			outLine += t.CellDivider
		}
		space := strings.Repeat(" ", width-vlen)
		if t.RighAdjustedColumns[i] {
			outLine += space + cell
		} else {
			outLine += cell + space
		}
	}
	return strings.TrimRight(outLine, " ")
}
