package go_aerogeometry

import (
	"fmt"

	"github.com/aerotools-dev/go_aerogeometry/amath/unit"
)

//ThicknessRatio keeps a thickness-to-chord ratio that may be inapplicable
//when the chord is zero.
//
//A zero chord on the primary surface is a legitimate degenerate case for
//this one descriptor, so the ratio carries an explicit "not applicable"
//state instead of failing the derivation.
type ThicknessRatio struct {
	applicable bool
	value      float64
}

func createThicknessRatio(thickness float64, chord float64) ThicknessRatio {
	if chord == 0 {
		return ThicknessRatio{}
	}
	return ThicknessRatio{applicable: true, value: thickness / chord}
}

//Applicable returns the flag indicating whether the ratio is defined
func (v ThicknessRatio) Applicable() bool {
	return v.applicable
}

//Value returns the ratio.
//
//The returned value is meaningful only when Applicable reports true.
func (v ThicknessRatio) Value() float64 {
	return v.value
}

func (v ThicknessRatio) String() string {
	if !v.applicable {
		return "N/A"
	}
	return fmt.Sprintf("%f", v.value)
}

//ControlSurfaceGeometry keeps the derived descriptors of a control surface.
//
//All values are dimensionless and fall in [0,1] for a geometrically valid
//control surface.
type ControlSurfaceGeometry struct {
	name                 string
	chordFractionRoot    float64
	chordFractionTip     float64
	taperRatio           float64
	thicknessRootRatio   float64
	thicknessTipRatio    float64
	spanwiseLocationRoot float64
	spanwiseLocationTip  float64
}

//Name returns the control surface name
func (v ControlSurfaceGeometry) Name() string {
	return v.name
}

//ChordFractionRoot returns the control surface chord at its root end
//divided by the parent root chord
func (v ControlSurfaceGeometry) ChordFractionRoot() float64 {
	return v.chordFractionRoot
}

//ChordFractionTip returns the control surface chord at its tip end
//divided by the parent tip chord
func (v ControlSurfaceGeometry) ChordFractionTip() float64 {
	return v.chordFractionTip
}

//TaperRatio returns the control surface tip chord divided by its root chord
func (v ControlSurfaceGeometry) TaperRatio() float64 {
	return v.taperRatio
}

//ThicknessRootRatio returns the control surface thickness divided by its
//chord at the root end
func (v ControlSurfaceGeometry) ThicknessRootRatio() float64 {
	return v.thicknessRootRatio
}

//ThicknessTipRatio returns the control surface thickness divided by its
//chord at the tip end
func (v ControlSurfaceGeometry) ThicknessTipRatio() float64 {
	return v.thicknessTipRatio
}

//SpanwiseLocationRoot returns the inboard end location as a fraction of
//the semispan
func (v ControlSurfaceGeometry) SpanwiseLocationRoot() float64 {
	return v.spanwiseLocationRoot
}

//SpanwiseLocationTip returns the outboard end location as a fraction of
//the semispan
func (v ControlSurfaceGeometry) SpanwiseLocationTip() float64 {
	return v.spanwiseLocationTip
}

//SurfaceGeometry structure keeps the derived geometric descriptors of one
//lifting surface.
//
//Sweep angles are present only for a swept surface and the control surface
//block only when the input carried a control surface; both are guarded by
//flags rather than left at zero.
type SurfaceGeometry struct {
	name                   string
	xOffsetFromNose        unit.Distance
	rootChord              unit.Distance
	tipChord               unit.Distance
	semispan               unit.Distance
	taperRatio             float64
	thicknessRoot          ThicknessRatio
	thicknessTip           ThicknessRatio
	hasSweepAngles         bool
	leSweepAngle           unit.Angular
	quarterChordSweepAngle unit.Angular
	hasControlSurface      bool
	controlSurface         ControlSurfaceGeometry
}

//Name returns the lifting surface name
func (v SurfaceGeometry) Name() string {
	return v.name
}

//XOffsetFromNose returns the quarter-chord point location measured from the
//aircraft nose, negative forward
func (v SurfaceGeometry) XOffsetFromNose() unit.Distance {
	return v.xOffsetFromNose
}

//RootChord returns the chord at the root station
func (v SurfaceGeometry) RootChord() unit.Distance {
	return v.rootChord
}

//TipChord returns the chord at the tip station
func (v SurfaceGeometry) TipChord() unit.Distance {
	return v.tipChord
}

//Semispan returns the spanwise distance from the centerline to the tip
func (v SurfaceGeometry) Semispan() unit.Distance {
	return v.semispan
}

//TaperRatio returns the tip chord divided by the root chord
func (v SurfaceGeometry) TaperRatio() float64 {
	return v.taperRatio
}

//ThicknessRoot returns the thickness divided by the root chord
func (v SurfaceGeometry) ThicknessRoot() ThicknessRatio {
	return v.thicknessRoot
}

//ThicknessTip returns the thickness divided by the tip chord
func (v SurfaceGeometry) ThicknessTip() ThicknessRatio {
	return v.thicknessTip
}

//HasSweepAngles returns the flag indicating whether sweep angles were
//derived
func (v SurfaceGeometry) HasSweepAngles() bool {
	return v.hasSweepAngles
}

//LeadingEdgeSweepAngle returns the leading edge sweep angle.
//
//The returned value is meaningful only when HasSweepAngles reports true.
func (v SurfaceGeometry) LeadingEdgeSweepAngle() unit.Angular {
	return v.leSweepAngle
}

//QuarterChordSweepAngle returns the sweep angle of the quarter-chord line.
//
//The returned value is meaningful only when HasSweepAngles reports true.
func (v SurfaceGeometry) QuarterChordSweepAngle() unit.Angular {
	return v.quarterChordSweepAngle
}

//HasControlSurface returns the flag indicating whether control surface
//descriptors were derived
func (v SurfaceGeometry) HasControlSurface() bool {
	return v.hasControlSurface
}

//ControlSurface returns the derived control surface descriptors.
//
//The returned value is meaningful only when HasControlSurface reports true.
func (v SurfaceGeometry) ControlSurface() ControlSurfaceGeometry {
	return v.controlSurface
}
