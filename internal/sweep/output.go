package sweep

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVWriter wraps csv.Writer with methods for sweep output.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a new CSVWriter writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (c *CSVWriter) WriteHeader() error {
	return c.w.Write([]string{"run_id", "index", "angle_deg", "x", "y", "z", "matrix"})
}

// WriteReport writes one row per result. The matrix column holds the
// 16-token serialization.
func (c *CSVWriter) WriteReport(r *Report) error {
	id := r.RunID.String()
	for _, res := range r.Results {
		row := []string{
			id,
			strconv.Itoa(res.Index),
			formatFloat(res.Angle),
			formatFloat(res.Point.X()),
			formatFloat(res.Point.Y()),
			formatFloat(res.Point.Z()),
			res.Matrix.Serialize(),
		}
		if err := c.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows and returns any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
