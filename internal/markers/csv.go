package markers

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads a CSV with latitude/longitude columns into set as points.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x (case-insensitive).
// Rows with a positive value in an optional radius column become circles.
func ReadCSV(r io.Reader, set *Set) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return errors.New("empty csv")
	}
	idxLat, idxLon, idxRadius := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "radius", "r":
			if idxRadius == -1 {
				idxRadius = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return errors.New("csv: latitude/longitude columns not found")
	}
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			set.Skipped++
			continue
		}
		pt, err := latLon(strings.TrimSpace(row[idxLat]), strings.TrimSpace(row[idxLon]))
		if err != nil {
			set.Skipped++
			continue
		}
		if idxRadius >= 0 && idxRadius < len(row) {
			if radius, err := strconv.ParseFloat(strings.TrimSpace(row[idxRadius]), 64); err == nil && radius > 0 {
				set.AddCircle(pt, radius)
				continue
			}
		}
		set.AddPoint(pt)
	}
	return nil
}
