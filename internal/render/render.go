// Package render prints arrays as text tables.
//
// A 0-D array prints as its value, a 1-D array as a single table row, a 2-D
// array as a table with one row per matrix row, and higher-dimensional
// arrays as a sequence of labelled 2-D blocks.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/born-ml/numprimer/internal/tensor"
)

// Config controls how values are formatted.
type Config struct {
	// Precision is the number of digits after the decimal point for float64
	// elements. -1 uses the shortest representation that round-trips.
	Precision int

	// Border draws table borders.
	Border bool
}

// DefaultConfig returns shortest-representation floats with borders.
func DefaultConfig() Config {
	return Config{
		Precision: -1,
		Border:    true,
	}
}

// Render writes a text rendering of a to w.
func Render(w io.Writer, a *tensor.Array, cfg Config) error {
	shape := a.Shape()
	cells := formatAll(a, cfg)

	var err error
	switch {
	case len(shape) == 0:
		_, err = fmt.Fprintln(w, cells[0])
	case a.NumElements() == 0:
		_, err = fmt.Fprintf(w, "empty %s array of shape %v\n", a.DType(), shape)
	case len(shape) == 1:
		table := newTable(w, cfg, shape[0], false)
		table.Append(cells)
		table.Render()
	case len(shape) == 2:
		renderMatrix(w, cfg, cells, shape[0], shape[1])
	default:
		err = renderBlocks(w, cfg, cells, shape)
	}
	return errors.Wrap(err, "render")
}

// String renders a into a string.
func String(a *tensor.Array, cfg Config) string {
	var sb strings.Builder
	_ = Render(&sb, a, cfg) // strings.Builder never fails
	return sb.String()
}

func newTable(w io.Writer, cfg Config, cols int, rowLabels bool) *tablewriter.Table {
	header := make([]string, 0, cols+1)
	if rowLabels {
		header = append(header, "")
	}
	for j := 0; j < cols; j++ {
		header = append(header, strconv.Itoa(j))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(cfg.Border)
	return table
}

func renderMatrix(w io.Writer, cfg Config, cells []string, rows, cols int) {
	table := newTable(w, cfg, cols, true)
	for i := 0; i < rows; i++ {
		row := append([]string{strconv.Itoa(i)}, cells[i*cols:(i+1)*cols]...)
		table.Append(row)
	}
	table.Render()
}

// renderBlocks prints one matrix per combination of leading indices, labelled
// like [1, 0, :, :].
func renderBlocks(w io.Writer, cfg Config, cells []string, shape tensor.Shape) error {
	lead := shape[:len(shape)-2]
	rows, cols := shape[len(shape)-2], shape[len(shape)-1]
	block := rows * cols
	index := make([]int, len(lead))

	for b := 0; b < lead.NumElements(); b++ {
		label := make([]string, 0, len(shape))
		for _, i := range index {
			label = append(label, strconv.Itoa(i))
		}
		label = append(label, ":", ":")
		if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(label, ", ")); err != nil {
			return err
		}
		renderMatrix(w, cfg, cells[b*block:(b+1)*block], rows, cols)

		// Advance the leading index odometer.
		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < lead[d] {
				break
			}
			index[d] = 0
		}
	}
	return nil
}

func formatAll(a *tensor.Array, cfg Config) []string {
	values := a.Values()
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = FormatValue(v, cfg)
	}
	return cells
}

// FormatValue formats one element the way Render does.
func FormatValue(v any, cfg Config) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', cfg.Precision, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}
