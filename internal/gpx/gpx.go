// Package gpx reads route files and extracts the point sequence the
// prediction engine works on. Tracks are preferred over routes when a
// file carries both.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/spatial"
)

// loopCloseMeters is the max start-to-end gap for a route to count
// as a loop
const loopCloseMeters = 500.0

// Point is a GPX track or route point
type Point struct {
	Lat       float64 `xml:"lat,attr"`
	Lon       float64 `xml:"lon,attr"`
	Elevation float64 `xml:"ele"`
}

// TrackSegment is a contiguous run of track points
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// Track is a recorded GPX track
type Track struct {
	Name     string         `xml:"name"`
	Segments []TrackSegment `xml:"trkseg"`
}

// Route is a planned GPX route
type Route struct {
	Name   string  `xml:"name"`
	Points []Point `xml:"rtept"`
}

// GPX is the top-level file structure
type GPX struct {
	XMLName  xml.Name `xml:"gpx"`
	Version  string   `xml:"version,attr"`
	Creator  string   `xml:"creator,attr"`
	Metadata Metadata `xml:"metadata"`
	Tracks   []Track  `xml:"trk"`
	Routes   []Route  `xml:"rte"`
}

// Metadata is the GPX metadata block
type Metadata struct {
	Name string `xml:"name"`
}

// Parse reads and parses a GPX file
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var g GPX
	if err := decoder.Decode(&g); err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return &g, nil
}

// Name returns the best available name for the file
func (g *GPX) Name() string {
	if g.Metadata.Name != "" {
		return g.Metadata.Name
	}
	for _, t := range g.Tracks {
		if t.Name != "" {
			return t.Name
		}
	}
	for _, r := range g.Routes {
		if r.Name != "" {
			return r.Name
		}
	}
	return ""
}

// TrackPoints flattens the file into a single point sequence with
// cumulative distances filled in. Tracks win over routes. Returns an
// error when the file holds no points at all.
func (g *GPX) TrackPoints() ([]models.TrackPoint, error) {
	var raw []Point
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			raw = append(raw, segment.Points...)
		}
	}
	if len(raw) == 0 {
		for _, route := range g.Routes {
			raw = append(raw, route.Points...)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no track or route points in file")
	}

	points := make([]models.TrackPoint, len(raw))
	for i, p := range raw {
		points[i] = models.TrackPoint{
			Latitude:  p.Lat,
			Longitude: p.Lon,
			Elevation: p.Elevation,
		}
	}

	return spatial.CumulativeDistances(points), nil
}

// Summarize computes the route-level summary from a point sequence
func Summarize(points []models.TrackPoint) models.RouteSummary {
	if len(points) == 0 {
		return models.RouteSummary{}
	}

	elevations := make([]float64, len(points))
	for i, p := range points {
		elevations[i] = p.Elevation
	}
	gain, loss := spatial.ElevationChanges(elevations)

	maxEle := points[0].Elevation
	minEle := points[0].Elevation
	for _, p := range points[1:] {
		if p.Elevation > maxEle {
			maxEle = p.Elevation
		}
		if p.Elevation < minEle {
			minEle = p.Elevation
		}
	}

	start := points[0]
	end := points[len(points)-1]
	closeM := spatial.HaversineDistance(
		start.Latitude, start.Longitude, end.Latitude, end.Longitude)

	return models.RouteSummary{
		DistanceKm:     points[len(points)-1].CumulativeKm,
		ElevationGainM: gain,
		ElevationLossM: loss,
		MaxElevationM:  maxEle,
		MinElevationM:  minEle,
		StartLat:       start.Latitude,
		StartLon:       start.Longitude,
		EndLat:         end.Latitude,
		EndLon:         end.Longitude,
		PointsCount:    len(points),
		IsLoop:         closeM < loopCloseMeters,
	}
}
