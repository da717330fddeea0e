package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/wobbly/internal/harmonic"
	"github.com/san-kum/wobbly/internal/sample"
)

func WriteCSV(w io.Writer, points []sample.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"progress", "value"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Progress, 'f', 6, 64),
			strconv.FormatFloat(p.Value, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type Document struct {
	Request harmonic.Request `json:"request"`
	Curve   harmonic.Curve   `json:"curve"`
	Stats   sample.Stats     `json:"stats"`
	Points  []sample.Point   `json:"points"`
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
