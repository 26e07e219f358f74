package go_aerogeometry_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	aerogeometry "github.com/aerotools-dev/go_aerogeometry"
	"github.com/aerotools-dev/go_aerogeometry/amath/unit"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	t.Helper()
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func feet(value float64) unit.Distance {
	return unit.MustCreateDistance(value, unit.DistanceFoot)
}

func sweptMainWing() aerogeometry.LiftingSurface {
	return aerogeometry.CreateSweptLiftingSurface("Main Wing",
		feet(10), feet(20), feet(10), feet(8), feet(2), feet(15), feet(1))
}

func TestSweptGeometry(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	geometry, err := calc.Derive(sweptMainWing())
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	if !geometry.HasSweepAngles() {
		t.Fatal("Swept surface must carry sweep angles")
	}
	assertEqual(t, geometry.TaperRatio(), 0.25, 1e-9, "TaperRatio")
	assertEqual(t, geometry.LeadingEdgeSweepAngle().In(unit.AngularDegree), 26.565051177, 1e-6, "LeSweep")
	assertEqual(t, geometry.QuarterChordSweepAngle().In(unit.AngularDegree), 21.801409486, 1e-6, "QuarterChordSweep")
	assertEqual(t, geometry.XOffsetFromNose().In(unit.DistanceFoot), -12.0, 1e-9, "XOffset")
	assertEqual(t, geometry.Semispan().In(unit.DistanceFoot), 15, 1e-9, "Semispan")

	if !geometry.ThicknessRoot().Applicable() || !geometry.ThicknessTip().Applicable() {
		t.Fatal("Thickness ratios must be applicable for non-zero chords")
	}
	assertEqual(t, geometry.ThicknessRoot().Value(), 0.125, 1e-9, "ThicknessRoot")
	assertEqual(t, geometry.ThicknessTip().Value(), 0.5, 1e-9, "ThicknessTip")
}

func TestUntaperedQuarterChordSweepEqualsLeadingEdgeSweep(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	surface := aerogeometry.CreateSweptLiftingSurface("Untapered Wing",
		feet(5), feet(20), feet(10), feet(5), feet(5), feet(12), feet(0.5))

	geometry, err := calc.Derive(surface)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	assertEqual(t, geometry.TaperRatio(), 1, 1e-9, "TaperRatio")
	assertEqual(t, geometry.QuarterChordSweepAngle().In(unit.AngularRadian),
		geometry.LeadingEdgeSweepAngle().In(unit.AngularRadian), 1e-12, "SweepAngles")
}

func TestUnsweptGeometry(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	surface := aerogeometry.CreateLiftingSurface("Horizontal Tail",
		feet(30), feet(5), feet(2.5), feet(6), feet(0.5))

	geometry, err := calc.Derive(surface)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if geometry.HasSweepAngles() {
		t.Fatal("Unswept surface must not carry sweep angles")
	}
	assertEqual(t, geometry.TaperRatio(), 0.5, 1e-9, "TaperRatio")
	assertEqual(t, geometry.XOffsetFromNose().In(unit.DistanceFoot), -31.25, 1e-9, "XOffset")
	assertEqual(t, geometry.ThicknessRoot().Value(), 0.1, 1e-9, "ThicknessRoot")
	assertEqual(t, geometry.ThicknessTip().Value(), 0.2, 1e-9, "ThicknessTip")
}

func TestZeroTipChord(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	surface := aerogeometry.CreateLiftingSurface("Delta Tip",
		feet(10), feet(5), feet(0), feet(8), feet(0.5))

	geometry, err := calc.Derive(surface)
	if err != nil {
		t.Fatalf("A zero tip chord must not fail the derivation: %v", err)
	}
	assertEqual(t, geometry.TaperRatio(), 0, 1e-9, "TaperRatio")
	if geometry.ThicknessTip().Applicable() {
		t.Fatal("Thickness over a zero tip chord must not be applicable")
	}
	if !geometry.ThicknessRoot().Applicable() {
		t.Fatal("Thickness over a non-zero root chord must be applicable")
	}
}

func TestZeroRootChord(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	for _, swept := range []bool{false, true} {
		var surface aerogeometry.LiftingSurface
		if swept {
			surface = aerogeometry.CreateSweptLiftingSurface("Degenerate Wing",
				feet(10), feet(20), feet(10), feet(0), feet(2), feet(15), feet(1))
		} else {
			surface = aerogeometry.CreateLiftingSurface("Degenerate Wing",
				feet(10), feet(0), feet(2), feet(15), feet(1))
		}

		geometry, err := calc.Derive(surface)
		var degenerate *aerogeometry.DegenerateGeometryError
		if !errors.As(err, &degenerate) {
			t.Fatalf("Zero root chord must degenerate the taper ratio (swept=%v)", swept)
		}
		if degenerate.Ratio != "taper ratio" {
			t.Errorf("Wrong ratio reported: %s", degenerate.Ratio)
		}
		//the thickness ratio itself never errors, it becomes not applicable
		if geometry.ThicknessRoot().Applicable() {
			t.Errorf("Thickness over a zero root chord must not be applicable (swept=%v)", swept)
		}
		if !geometry.ThicknessTip().Applicable() {
			t.Errorf("Thickness over a non-zero tip chord must stay applicable (swept=%v)", swept)
		}
	}
}

func TestControlSurfaceGeometry(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	control := aerogeometry.CreateControlSurface("Aileron",
		aerogeometry.CreateStationPair(feet(3), feet(6)),
		aerogeometry.CreateStationPair(feet(2), feet(1)),
		aerogeometry.CreateStationPair(feet(0.25), feet(0.125)))
	surface := sweptMainWing().WithControlSurface(control)

	geometry, err := calc.Derive(surface)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if !geometry.HasControlSurface() {
		t.Fatal("Result must carry the control surface block")
	}

	derived := geometry.ControlSurface()
	if derived.Name() != "Aileron" {
		t.Errorf("Wrong control surface name: %s", derived.Name())
	}
	assertEqual(t, derived.ChordFractionRoot(), 0.25, 1e-9, "ChordFractionRoot")
	assertEqual(t, derived.ChordFractionTip(), 0.5, 1e-9, "ChordFractionTip")
	assertEqual(t, derived.TaperRatio(), 0.5, 1e-9, "ControlTaperRatio")
	assertEqual(t, derived.ThicknessRootRatio(), 0.125, 1e-9, "ControlThicknessRoot")
	assertEqual(t, derived.ThicknessTipRatio(), 0.125, 1e-9, "ControlThicknessTip")
	assertEqual(t, derived.SpanwiseLocationRoot(), 0.2, 1e-9, "SpanwiseLocationRoot")
	assertEqual(t, derived.SpanwiseLocationTip(), 0.4, 1e-9, "SpanwiseLocationTip")
}

func TestControlSurfaceZeroRootChord(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	control := aerogeometry.CreateControlSurface("Aileron",
		aerogeometry.CreateStationPair(feet(3), feet(6)),
		aerogeometry.CreateStationPair(feet(0), feet(1)),
		aerogeometry.CreateStationPair(feet(0.25), feet(0.125)))
	surface := sweptMainWing().WithControlSurface(control)

	_, err := calc.Derive(surface)
	var degenerate *aerogeometry.DegenerateGeometryError
	if !errors.As(err, &degenerate) {
		t.Fatal("A zero control surface chord is a hard failure, not a sentinel")
	}
	if degenerate.Denominator != "control surface root chord" {
		t.Errorf("Wrong denominator reported: %s", degenerate.Denominator)
	}
}

func TestZeroSemispanWithControlSurface(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	control := aerogeometry.CreateControlSurface("Aileron",
		aerogeometry.CreateStationPair(feet(3), feet(6)),
		aerogeometry.CreateStationPair(feet(2), feet(1)),
		aerogeometry.CreateStationPair(feet(0.25), feet(0.125)))
	surface := aerogeometry.CreateLiftingSurface("Stub Wing",
		feet(10), feet(8), feet(2), feet(0), feet(1)).WithControlSurface(control)

	geometry, err := calc.Derive(surface)
	var degenerate *aerogeometry.DegenerateGeometryError
	if !errors.As(err, &degenerate) {
		t.Fatal("A zero semispan must fail the spanwise location, not produce Inf/NaN")
	}
	if math.IsInf(geometry.ControlSurface().SpanwiseLocationRoot(), 0) ||
		math.IsNaN(geometry.ControlSurface().SpanwiseLocationTip()) {
		t.Fatal("Spanwise locations must never be Inf/NaN")
	}
}

func TestSpanwiseOrderingInvariant(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	control := aerogeometry.CreateControlSurface("Aileron",
		aerogeometry.CreateStationPair(feet(6), feet(3)),
		aerogeometry.CreateStationPair(feet(2), feet(1)),
		aerogeometry.CreateStationPair(feet(0.25), feet(0.125)))
	surface := sweptMainWing().WithControlSurface(control)

	_, err := calc.Derive(surface)
	var invalid *aerogeometry.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatal("A root station outboard of the tip station must be rejected")
	}
	if invalid.Field != "spanwise_distance_from_root" {
		t.Errorf("Wrong field reported: %s", invalid.Field)
	}
}

func TestConcurrentDerivations(t *testing.T) {
	calc := aerogeometry.CreateGeometryCalculator()
	surface := sweptMainWing()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				geometry, err := calc.Derive(surface)
				if err != nil {
					t.Errorf("Derive failed: %v", err)
					return
				}
				if math.Abs(geometry.TaperRatio()-0.25) > 1e-9 ||
					math.Abs(geometry.XOffsetFromNose().In(unit.DistanceFoot)+12) > 1e-9 {
					t.Error("Concurrent derivations interfered")
					return
				}
			}
		}()
	}
	wg.Wait()
}
