package go_aerogeometry

import (
	"errors"
	"math"

	"github.com/aerotools-dev/go_aerogeometry/amath/unit"
)

//GeometryCalculator derives the standard geometric descriptors of a lifting
//surface from its raw dimensions.
//
//The calculator is stateless and Derive is pure, so one calculator may be
//shared by any number of goroutines.
type GeometryCalculator struct {
}

//CreateGeometryCalculator creates an instance of the geometry calculator
func CreateGeometryCalculator() GeometryCalculator {
	return GeometryCalculator{}
}

//Derive computes the descriptor set for the surface specified.
//
//All internal math runs in feet and radians. Every descriptor whose inputs
//are sound is computed even when another descriptor degenerates: the method
//returns the partial result together with the joined typed errors and the
//caller decides whether the partial result is usable. The only tolerated
//zero denominator is a zero chord under the primary thickness ratios, which
//yields a not-applicable ratio instead of an error.
func (v GeometryCalculator) Derive(surface LiftingSurface) (SurfaceGeometry, error) {
	var errs []error

	rootChord := surface.RootChord().In(unit.DistanceFoot)
	tipChord := surface.TipChord().In(unit.DistanceFoot)
	semispan := surface.Semispan().In(unit.DistanceFoot)
	thickness := surface.Thickness().In(unit.DistanceFoot)
	noseToRootLE := surface.NoseToRootLeadingEdge().In(unit.DistanceFoot)

	geometry := SurfaceGeometry{
		name:      surface.Name(),
		rootChord: surface.RootChord().Convert(unit.DistanceFoot),
		tipChord:  surface.TipChord().Convert(unit.DistanceFoot),
		semispan:  surface.Semispan().Convert(unit.DistanceFoot),
	}

	//quarter-chord point aft of the leading edge, negative-forward convention
	geometry.xOffsetFromNose = unit.MustCreateDistance(-noseToRootLE-0.25*rootChord, unit.DistanceFoot)

	geometry.thicknessRoot = createThicknessRatio(thickness, rootChord)
	geometry.thicknessTip = createThicknessRatio(thickness, tipChord)

	taperDefined := rootChord != 0
	if taperDefined {
		geometry.taperRatio = tipChord / rootChord
	} else {
		errs = append(errs, &DegenerateGeometryError{Ratio: "taper ratio", Denominator: "root chord"})
	}

	if surface.Swept() {
		leSweep := math.Atan2(surface.PerpendicularLength().In(unit.DistanceFoot),
			surface.ParallelLength().In(unit.DistanceFoot))
		if semispan == 0 {
			errs = append(errs, &DegenerateGeometryError{Ratio: "quarter chord sweep angle", Denominator: "semispan"})
		} else if taperDefined {
			b := 2 * semispan
			quarterChordSweep := math.Atan(math.Tan(leSweep) + 2*(0.25/b)*rootChord*(geometry.taperRatio-1))
			geometry.hasSweepAngles = true
			geometry.leSweepAngle = unit.MustCreateAngular(leSweep, unit.AngularRadian)
			geometry.quarterChordSweepAngle = unit.MustCreateAngular(quarterChordSweep, unit.AngularRadian)
		}
	}

	if surface.HasControlSurface() {
		control := surface.ControlSurface()
		controlGeometry, controlErrs := v.deriveControlSurface(control, rootChord, tipChord, semispan)
		geometry.hasControlSurface = true
		geometry.controlSurface = controlGeometry
		errs = append(errs, controlErrs...)
	}

	return geometry, errors.Join(errs...)
}

func (v GeometryCalculator) deriveControlSurface(control ControlSurface,
	rootChord float64, tipChord float64, semispan float64) (ControlSurfaceGeometry, []error) {
	var errs []error

	controlRootChord := control.Chord().Root().In(unit.DistanceFoot)
	controlTipChord := control.Chord().Tip().In(unit.DistanceFoot)
	spanwiseRoot := control.SpanwiseFromRoot().Root().In(unit.DistanceFoot)
	spanwiseTip := control.SpanwiseFromRoot().Tip().In(unit.DistanceFoot)

	geometry := ControlSurfaceGeometry{name: control.Name()}

	if rootChord != 0 {
		geometry.chordFractionRoot = controlRootChord / rootChord
	} else {
		errs = append(errs, &DegenerateGeometryError{Ratio: "control surface chord fraction at root", Denominator: "root chord"})
	}
	if tipChord != 0 {
		geometry.chordFractionTip = controlTipChord / tipChord
	} else {
		errs = append(errs, &DegenerateGeometryError{Ratio: "control surface chord fraction at tip", Denominator: "tip chord"})
	}

	if controlRootChord != 0 {
		geometry.taperRatio = controlTipChord / controlRootChord
		geometry.thicknessRootRatio = control.Thickness().Root().In(unit.DistanceFoot) / controlRootChord
	} else {
		errs = append(errs,
			&DegenerateGeometryError{Ratio: "control surface taper ratio", Denominator: "control surface root chord"},
			&DegenerateGeometryError{Ratio: "control surface thickness ratio at root", Denominator: "control surface root chord"})
	}
	if controlTipChord != 0 {
		geometry.thicknessTipRatio = control.Thickness().Tip().In(unit.DistanceFoot) / controlTipChord
	} else {
		errs = append(errs, &DegenerateGeometryError{Ratio: "control surface thickness ratio at tip", Denominator: "control surface tip chord"})
	}

	if spanwiseRoot > spanwiseTip {
		errs = append(errs, &InvalidInputError{Field: "spanwise_distance_from_root", Reason: "root station is outboard of the tip station"})
	} else if spanwiseTip > semispan {
		errs = append(errs, &InvalidInputError{Field: "spanwise_distance_from_root", Reason: "tip station is outboard of the semispan"})
	}

	if semispan != 0 {
		geometry.spanwiseLocationRoot = spanwiseRoot / semispan
		geometry.spanwiseLocationTip = spanwiseTip / semispan
	} else {
		errs = append(errs, &DegenerateGeometryError{Ratio: "control surface spanwise location", Denominator: "semispan"})
	}

	return geometry, errs
}
