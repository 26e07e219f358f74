package go_aerogeometry_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	aerogeometry "github.com/aerotools-dev/go_aerogeometry"
)

func TestFormatSweptReport(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	control := aerogeometry.CreateControlSurface("Aileron",
		aerogeometry.CreateStationPair(feet(3), feet(6)),
		aerogeometry.CreateStationPair(feet(2), feet(1)),
		aerogeometry.CreateStationPair(feet(0.25), feet(0.125)))
	geometry, err := calc.Derive(sweptMainWing().WithControlSurface(control))
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	got := strings.Split(aerogeometry.FormatReport(geometry, 6), "\n")
	want := []string{
		"Lifting Surface Name: Main Wing",
		"Swept Geometric Parameters",
		"x offset from nose[ft]: -12",
		"Chord at root[ft]: 8",
		"Chord at tip[ft]: 2",
		"Leading edge sweep angle[deg]: 26.5651",
		"Taper ratio: 0.25",
		"Quarter chord sweep angle[deg]: 21.8014",
		"Thickness divided by root chord: 0.125",
		"Thickness divided by tip chord: 0.5",
		"semispan[ft]: 15",
		"",
		"Control Surface Name: Aileron",
		"Control Surface Chord Fraction Root: 0.25",
		"Control Surface Chord Fraction Tip: 0.5",
		"Control Surface Taper Ratio: 0.5",
		"Control Surface Thickness divided by Root Chord: 0.125",
		"Control Surface Thickness divided by Tip Chord: 0.125",
		"Control Surface Spanwise Location Root: 0.2",
		"Control Surface Spanwise Location Tip: 0.4",
		"",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatUnsweptReportWithSentinel(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	surface := aerogeometry.CreateLiftingSurface("Delta Tip",
		feet(10), feet(5), feet(0), feet(8), feet(0.5))
	geometry, err := calc.Derive(surface)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	report := aerogeometry.FormatReport(geometry, 8)
	if strings.Contains(report, "sweep angle") {
		t.Error("Unswept report must not mention sweep angles")
	}
	if !strings.Contains(report, "Unswept Geometric Parameters") {
		t.Error("Unswept report header missing")
	}
	if !strings.Contains(report, "Thickness divided by tip chord: N/A") {
		t.Error("Inapplicable thickness ratio must render as N/A")
	}
}
