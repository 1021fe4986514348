package markers

import (
	"encoding/xml"
	"io"
	"strings"

	"goworld/internal/geom"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Point      *kmlCoords `xml:"Point"`
	LineString *kmlCoords `xml:"LineString"`
}

type kmlDoc struct {
	Placemarks       []kmlPlacemark `xml:"Placemark"`
	FolderPlacemarks []kmlPlacemark `xml:"Folder>Placemark"`
	DocPlacemarks    []kmlPlacemark `xml:"Document>Placemark"`
	DocFolderMarks   []kmlPlacemark `xml:"Document>Folder>Placemark"`
}

// ReadKML adds Placemark Points as points and Placemark LineStrings as tracks.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func ReadKML(r io.Reader, set *Set) error {
	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	var all []kmlPlacemark
	all = append(all, doc.Placemarks...)
	all = append(all, doc.FolderPlacemarks...)
	all = append(all, doc.DocPlacemarks...)
	all = append(all, doc.DocFolderMarks...)

	for _, pm := range all {
		if pm.Point != nil {
			for _, pt := range kmlTuples(pm.Point.Coordinates, set) {
				set.AddPoint(pt)
			}
		}
		if pm.LineString != nil {
			set.AddTrack(kmlTuples(pm.LineString.Coordinates, set))
		}
	}
	return nil
}

// kmlTuples splits a coordinates element: whitespace separates tuples,
// commas separate values.
func kmlTuples(s string, set *Set) []geom.Point {
	var pts []geom.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			set.Skipped++
			continue
		}
		pt, err := latLon(strings.TrimSpace(vals[1]), strings.TrimSpace(vals[0]))
		if err != nil {
			set.Skipped++
			continue
		}
		pts = append(pts, pt)
	}
	return pts
}
