package geom

import (
	"errors"
	"strconv"
	"strings"
)

// add extends the bbox to cover pts.
func (d *Data) add(pts ...Point) {
	for _, p := range pts {
		d.BBox.Extend(p, !d.bboxSet)
		d.bboxSet = true
	}
}

func parseTuples(block string) []Point {
	var out []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, Point{x, y})
	}
	return out
}

// ParseWKT parses a subset of WKT into Data.
// Supported: POINT, MULTIPOINT, LINESTRING, POLYGON (rings: first outer, following holes).
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	switch {
	case strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "MULTIPOINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt point: invalid")
		}
		// MULTIPOINT((1 2), (3 4)) is as valid as MULTIPOINT(1 2, 3 4)
		body := strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])
		pts := parseTuples(body)
		d.add(pts...)
		d.Points = append(d.Points, pts...)
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		ls := parseTuples(s[i+1 : j])
		if len(ls) < 2 {
			return Data{}, errors.New("wkt linestring: need at least 2 points")
		}
		d.add(ls...)
		d.Lines = append(d.Lines, ls)
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		// normalize spaces around ring separators
		rings := strings.ReplaceAll(s[i+2:j], "), (", "),(")
		rings = strings.ReplaceAll(rings, ") , (", "),(")
		var poly [][]Point
		for _, rp := range strings.Split(rings, "),(") {
			pts := parseTuples(rp)
			if len(pts) < 3 {
				continue
			}
			d.add(pts...)
			poly = append(poly, pts)
		}
		if len(poly) == 0 {
			return Data{}, errors.New("wkt polygon: no usable rings")
		}
		d.Polygons = append(d.Polygons, poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}
