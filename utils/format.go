package utils

import (
	"math"
	"strconv"
	"strings"
)

// Table lays out rows of cells so that every column is as wide as its widest cell
type Table struct {
	Rows [][]string
}

func NewTable() *Table {
	return &Table{}
}

func (tb *Table) AddRow(cells ...string) {
	row := make([]string, len(cells))
	copy(row, cells)
	tb.Rows = append(tb.Rows, row)
}

// String renders the rows left justified, cells separated by a single space.
// Every cell is padded, including the last one in a row.
func (tb *Table) String() string {
	if len(tb.Rows) == 0 {
		return ""
	}
	var (
		nCols  = len(tb.Rows[0])
		widths = make([]int, nCols)
	)
	for _, row := range tb.Rows {
		for j := 0; j < nCols && j < len(row); j++ {
			if len(row[j]) > widths[j] {
				widths[j] = len(row[j])
			}
		}
	}
	lines := make([]string, len(tb.Rows))
	for i, row := range tb.Rows {
		cells := make([]string, nCols)
		for j := 0; j < nCols; j++ {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			cells[j] = cell + strings.Repeat(" ", widths[j]-len(cell))
		}
		lines[i] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}

// LineBreakList joins items with tabs and starts a new line after every perLine items.
// There is no separator after the last item.
func LineBreakList(items []string, perLine int) string {
	if perLine < 1 {
		perLine = 1
	}
	var sb strings.Builder
	for len(items) > perLine {
		sb.WriteString(strings.Join(items[:perLine], "\t"))
		sb.WriteByte('\n')
		items = items[perLine:]
	}
	sb.WriteString(strings.Join(items, "\t"))
	return sb.String()
}

// FormatReal renders v with the fewest digits that parse back to exactly v.
// Integral values keep a trailing ".0", large and small magnitudes use exponent notation.
func FormatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatInts converts indices to text, adding offset to each (1 for one-based output)
func FormatInts(ints []int, offset int) (s []string) {
	s = make([]string, len(ints))
	for i, n := range ints {
		s[i] = strconv.Itoa(n + offset)
	}
	return
}

// FormatReals applies FormatReal to each value
func FormatReals(vals []float64) (s []string) {
	s = make([]string, len(vals))
	for i, v := range vals {
		s[i] = FormatReal(v)
	}
	return
}
