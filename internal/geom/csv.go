package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// ThingRow is one placed object read from a CSV file.
type ThingRow struct {
	Pos   Point
	Type  int
	Angle int
}

// LoadThingsCSV reads things from a CSV file, see ReadThingsCSV.
func LoadThingsCSV(path string) ([]ThingRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadThingsCSV(f)
}

// ReadThingsCSV reads a CSV with x/y columns and optional type/angle columns.
// Column detection is case-insensitive; rows with unparsable coordinates are skipped.
func ReadThingsCSV(r io.Reader) ([]ThingRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxX, idxY, idxType, idxAngle := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if idxX == -1 {
				idxX = i
			}
		case "y":
			if idxY == -1 {
				idxY = i
			}
		case "type", "doomednum":
			if idxType == -1 {
				idxType = i
			}
		case "angle":
			if idxAngle == -1 {
				idxAngle = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var out []ThingRow
	for _, row := range recs[1:] {
		x, err1 := strconv.ParseFloat(field(row, idxX), 64)
		y, err2 := strconv.ParseFloat(field(row, idxY), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		tr := ThingRow{Pos: Point{x, y}}
		tr.Type, _ = strconv.Atoi(field(row, idxType))
		tr.Angle, _ = strconv.Atoi(field(row, idxAngle))
		out = append(out, tr)
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no valid rows parsed")
	}
	return out, nil
}
