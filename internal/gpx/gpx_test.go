package gpx

import (
	"strings"
	"testing"
)

const trackGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
	<metadata><name>Morning Loop</name></metadata>
	<trk>
		<name>Track One</name>
		<trkseg>
			<trkpt lat="46.0" lon="7.0"><ele>1000</ele></trkpt>
			<trkpt lat="46.001" lon="7.0"><ele>1020</ele></trkpt>
			<trkpt lat="46.002" lon="7.0"><ele>1010</ele></trkpt>
		</trkseg>
	</trk>
</gpx>`

const routeGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
	<rte>
		<name>Planned Route</name>
		<rtept lat="46.0" lon="7.0"><ele>800</ele></rtept>
		<rtept lat="46.01" lon="7.0"><ele>900</ele></rtept>
	</rte>
</gpx>`

func TestParseReader(t *testing.T) {
	g, err := ParseReader(strings.NewReader(trackGPX))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if len(g.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(g.Tracks))
	}
	if len(g.Tracks[0].Segments[0].Points) != 3 {
		t.Errorf("expected 3 points, got %d", len(g.Tracks[0].Segments[0].Points))
	}
	if g.Name() != "Morning Loop" {
		t.Errorf("Name() = %q, want metadata name", g.Name())
	}

	p := g.Tracks[0].Segments[0].Points[0]
	if p.Lat != 46.0 || p.Lon != 7.0 || p.Elevation != 1000 {
		t.Errorf("first point = %+v", p)
	}
}

func TestTrackPoints(t *testing.T) {
	g, err := ParseReader(strings.NewReader(trackGPX))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	points, err := g.TrackPoints()
	if err != nil {
		t.Fatalf("TrackPoints failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	if points[0].CumulativeKm != 0 {
		t.Errorf("first cumulative = %v, want 0", points[0].CumulativeKm)
	}
	if points[2].CumulativeKm <= points[1].CumulativeKm {
		t.Error("cumulative distance not increasing")
	}
}

func TestTrackPointsRouteFallback(t *testing.T) {
	g, err := ParseReader(strings.NewReader(routeGPX))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	points, err := g.TrackPoints()
	if err != nil {
		t.Fatalf("TrackPoints failed: %v", err)
	}
	if len(points) != 2 {
		t.Errorf("expected 2 route points, got %d", len(points))
	}
	if g.Name() != "Planned Route" {
		t.Errorf("Name() = %q, want route name", g.Name())
	}
}

func TestTrackPointsEmpty(t *testing.T) {
	g, err := ParseReader(strings.NewReader(
		`<?xml version="1.0"?><gpx version="1.1" creator="test"></gpx>`))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if _, err := g.TrackPoints(); err == nil {
		t.Error("empty file should fail")
	}
}

func TestSummarize(t *testing.T) {
	g, _ := ParseReader(strings.NewReader(trackGPX))
	points, _ := g.TrackPoints()

	s := Summarize(points)

	if s.PointsCount != 3 {
		t.Errorf("points count = %d, want 3", s.PointsCount)
	}
	if s.ElevationGainM != 20 {
		t.Errorf("gain = %v, want 20", s.ElevationGainM)
	}
	if s.ElevationLossM != 10 {
		t.Errorf("loss = %v, want 10", s.ElevationLossM)
	}
	if s.MaxElevationM != 1020 || s.MinElevationM != 1000 {
		t.Errorf("elevation range = %v..%v, want 1000..1020", s.MinElevationM, s.MaxElevationM)
	}
	// Start-to-end gap of ~220 m counts as a loop
	if !s.IsLoop {
		t.Error("short out-and-back should count as a loop")
	}
}

func TestSummarizeNotLoop(t *testing.T) {
	g, _ := ParseReader(strings.NewReader(routeGPX))
	points, _ := g.TrackPoints()

	// Roughly 1.1 km between endpoints
	if s := Summarize(points); s.IsLoop {
		t.Error("point-to-point route misdetected as loop")
	}
}
