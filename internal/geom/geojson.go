package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons).
func LoadGeo(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	d, err := ReadGeoJSON(f)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadGeoJSON decodes a Feature, FeatureCollection or bare geometry.
func ReadGeoJSON(r io.Reader) (Data, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Data{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Data{}, err
	}
	var d Data
	addLine := func(ls []Point) {
		if len(ls) < 2 {
			return
		}
		d.add(ls...)
		d.Lines = append(d.Lines, ls)
	}
	addPoly := func(poly [][]Point) {
		var rings [][]Point
		for _, ring := range poly {
			if len(ring) >= 3 {
				d.add(ring...)
				rings = append(rings, ring)
			}
		}
		if len(rings) > 0 {
			d.Polygons = append(d.Polygons, rings)
		}
	}
	parsePoint := func(v any) (pt Point, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return Point{x, y}, true
			}
		}
		return Point{}, false
	}
	parseArrayPoints := func(v any) (pts []Point, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts, true
	}
	parsePolygon := func(v any) (poly [][]Point, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, ring := range arr {
			if ls, ok := parseArrayPoints(ring); ok {
				poly = append(poly, ls)
			}
		}
		return poly, true
	}
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				d.add(pt)
				d.Points = append(d.Points, pt)
			}
		case "MultiPoint":
			if pts, ok := parseArrayPoints(g["coordinates"]); ok {
				d.add(pts...)
				d.Points = append(d.Points, pts...)
			}
		case "LineString":
			if ls, ok := parseArrayPoints(g["coordinates"]); ok {
				addLine(ls)
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if ls, ok := parseArrayPoints(el); ok {
						addLine(ls)
					}
				}
			}
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok {
				addPoly(poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if poly, ok := parsePolygon(el); ok {
						addPoly(poly)
					}
				}
			}
		case "GeometryCollection":
			if gs, ok := g["geometries"].([]any); ok {
				for _, sub := range gs {
					if sm, ok := sub.(map[string]any); ok {
						walkGeom(sm)
					}
				}
			}
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw)
		}
	}
	if d.empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}
