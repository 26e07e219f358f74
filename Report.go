package go_aerogeometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aerotools-dev/go_aerogeometry/amath/unit"
)

//FormatReport renders the derived descriptors as the console report blocks.
//
//precision is the number of significant digits used for every numeric
//value. Angles are converted to degrees for display only, radians stay the
//canonical unit inside the result.
func FormatReport(geometry SurfaceGeometry, precision int) string {
	var b strings.Builder

	num := func(x float64) string {
		return strconv.FormatFloat(x, 'g', precision, 64)
	}
	ratio := func(x ThicknessRatio) string {
		if !x.Applicable() {
			return "N/A"
		}
		return num(x.Value())
	}

	fmt.Fprintf(&b, "Lifting Surface Name: %s\n", geometry.Name())
	if geometry.HasSweepAngles() {
		b.WriteString("Swept Geometric Parameters\n")
	} else {
		b.WriteString("Unswept Geometric Parameters\n")
	}
	fmt.Fprintf(&b, "x offset from nose[ft]: %s\n", num(geometry.XOffsetFromNose().In(unit.DistanceFoot)))
	fmt.Fprintf(&b, "Chord at root[ft]: %s\n", num(geometry.RootChord().In(unit.DistanceFoot)))
	fmt.Fprintf(&b, "Chord at tip[ft]: %s\n", num(geometry.TipChord().In(unit.DistanceFoot)))
	if geometry.HasSweepAngles() {
		fmt.Fprintf(&b, "Leading edge sweep angle[deg]: %s\n", num(geometry.LeadingEdgeSweepAngle().In(unit.AngularDegree)))
	}
	fmt.Fprintf(&b, "Taper ratio: %s\n", num(geometry.TaperRatio()))
	if geometry.HasSweepAngles() {
		fmt.Fprintf(&b, "Quarter chord sweep angle[deg]: %s\n", num(geometry.QuarterChordSweepAngle().In(unit.AngularDegree)))
	}
	fmt.Fprintf(&b, "Thickness divided by root chord: %s\n", ratio(geometry.ThicknessRoot()))
	fmt.Fprintf(&b, "Thickness divided by tip chord: %s\n", ratio(geometry.ThicknessTip()))
	fmt.Fprintf(&b, "semispan[ft]: %s\n", num(geometry.Semispan().In(unit.DistanceFoot)))

	if geometry.HasControlSurface() {
		control := geometry.ControlSurface()
		b.WriteString("\n")
		fmt.Fprintf(&b, "Control Surface Name: %s\n", control.Name())
		fmt.Fprintf(&b, "Control Surface Chord Fraction Root: %s\n", num(control.ChordFractionRoot()))
		fmt.Fprintf(&b, "Control Surface Chord Fraction Tip: %s\n", num(control.ChordFractionTip()))
		fmt.Fprintf(&b, "Control Surface Taper Ratio: %s\n", num(control.TaperRatio()))
		fmt.Fprintf(&b, "Control Surface Thickness divided by Root Chord: %s\n", num(control.ThicknessRootRatio()))
		fmt.Fprintf(&b, "Control Surface Thickness divided by Tip Chord: %s\n", num(control.ThicknessTipRatio()))
		fmt.Fprintf(&b, "Control Surface Spanwise Location Root: %s\n", num(control.SpanwiseLocationRoot()))
		fmt.Fprintf(&b, "Control Surface Spanwise Location Tip: %s\n", num(control.SpanwiseLocationTip()))
	}

	return b.String()
}
