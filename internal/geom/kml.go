package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlGeometry struct {
	Points      []kmlCoords   `xml:"Point"`
	LineStrings []kmlCoords   `xml:"LineString"`
	Polygons    []kmlPolygon  `xml:"Polygon"`
	Multi       []kmlGeometry `xml:"MultiGeometry"`
}

// LoadKML reads the placemark geometries of a KML file.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	d, err := ReadKML(f)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadKML decodes Placemark > Point, LineString and Polygon elements at any
// folder depth. Coordinates are "x,y[,z]" tuples; z is ignored.
func ReadKML(r io.Reader) (Data, error) {
	dec := xml.NewDecoder(r)
	var d Data
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var g kmlGeometry
		if err := dec.DecodeElement(&g, &se); err != nil {
			return Data{}, err
		}
		d.addKML(g)
	}
	if d.empty() {
		return Data{}, errors.New("kml: no geometries found")
	}
	return d, nil
}

func (d *Data) addKML(g kmlGeometry) {
	for _, p := range g.Points {
		if pts := parseKMLCoords(p.Coordinates); len(pts) > 0 {
			d.add(pts[0])
			d.Points = append(d.Points, pts[0])
		}
	}
	for _, l := range g.LineStrings {
		if ls := parseKMLCoords(l.Coordinates); len(ls) >= 2 {
			d.add(ls...)
			d.Lines = append(d.Lines, ls)
		}
	}
	for _, poly := range g.Polygons {
		var rings [][]Point
		for _, c := range append([]kmlRing{poly.Outer}, poly.Inner...) {
			if ring := parseKMLCoords(c.Coordinates); len(ring) >= 3 {
				d.add(ring...)
				rings = append(rings, ring)
			}
		}
		if len(rings) > 0 {
			d.Polygons = append(d.Polygons, rings)
		}
	}
	for _, sub := range g.Multi {
		d.addKML(sub)
	}
}

// parseKMLCoords parses whitespace separated tuples, skipping malformed ones.
func parseKMLCoords(s string) []Point {
	var pts []Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, Point{x, y})
	}
	return pts
}
