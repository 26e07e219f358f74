package go_aerogeometry

import "github.com/aerotools-dev/go_aerogeometry/amath/unit"

//LiftingSurface keeps the raw dimensions of one wing or tail surface as
//they come from the aircraft configuration.
//
//The record is immutable once constructed. All validation beyond unit
//consistency happens in the geometry calculator because the checks are
//specific to the formulas that consume the dimensions.
type LiftingSurface struct {
	name                string
	swept               bool
	noseToRootLE        unit.Distance
	parallelLength      unit.Distance
	perpendicularLength unit.Distance
	rootChord           unit.Distance
	tipChord            unit.Distance
	semispan            unit.Distance
	thickness           unit.Distance
	hasControlSurface   bool
	controlSurface      ControlSurface
}

//CreateLiftingSurface creates an unswept lifting surface.
//
//noseToRootLE is the distance from the aircraft nose to the leading edge
//at the root.
func CreateLiftingSurface(name string, noseToRootLE unit.Distance, rootChord unit.Distance,
	tipChord unit.Distance, semispan unit.Distance, thickness unit.Distance) LiftingSurface {
	return LiftingSurface{
		name:         name,
		swept:        false,
		noseToRootLE: noseToRootLE,
		rootChord:    rootChord,
		tipChord:     tipChord,
		semispan:     semispan,
		thickness:    thickness,
	}
}

//CreateSweptLiftingSurface creates a swept lifting surface.
//
//parallelLength and perpendicularLength are the streamwise and lateral
//offsets of the swept leading edge relative to an unswept segment; their
//arc tangent defines the leading edge sweep angle.
func CreateSweptLiftingSurface(name string, noseToRootLE unit.Distance, parallelLength unit.Distance,
	perpendicularLength unit.Distance, rootChord unit.Distance, tipChord unit.Distance,
	semispan unit.Distance, thickness unit.Distance) LiftingSurface {
	return LiftingSurface{
		name:                name,
		swept:               true,
		noseToRootLE:        noseToRootLE,
		parallelLength:      parallelLength,
		perpendicularLength: perpendicularLength,
		rootChord:           rootChord,
		tipChord:            tipChord,
		semispan:            semispan,
		thickness:           thickness,
	}
}

//WithControlSurface returns a copy of the lifting surface carrying the
//control surface specified
func (v LiftingSurface) WithControlSurface(control ControlSurface) LiftingSurface {
	v.hasControlSurface = true
	v.controlSurface = control
	return v
}

//Name returns the lifting surface name
func (v LiftingSurface) Name() string {
	return v.name
}

//Swept returns the flag indicating whether the surface is swept
func (v LiftingSurface) Swept() bool {
	return v.swept
}

//NoseToRootLeadingEdge returns the distance from the aircraft nose to the
//leading edge at the root
func (v LiftingSurface) NoseToRootLeadingEdge() unit.Distance {
	return v.noseToRootLE
}

//ParallelLength returns the streamwise offset defining the leading edge sweep
func (v LiftingSurface) ParallelLength() unit.Distance {
	return v.parallelLength
}

//PerpendicularLength returns the lateral offset defining the leading edge sweep
func (v LiftingSurface) PerpendicularLength() unit.Distance {
	return v.perpendicularLength
}

//RootChord returns the chord at the root station
func (v LiftingSurface) RootChord() unit.Distance {
	return v.rootChord
}

//TipChord returns the chord at the tip station
func (v LiftingSurface) TipChord() unit.Distance {
	return v.tipChord
}

//Semispan returns the spanwise distance from the centerline to the tip
func (v LiftingSurface) Semispan() unit.Distance {
	return v.semispan
}

//Thickness returns the surface thickness
func (v LiftingSurface) Thickness() unit.Distance {
	return v.thickness
}

//HasControlSurface returns the flag indicating whether a control surface
//is attached
func (v LiftingSurface) HasControlSurface() bool {
	return v.hasControlSurface
}

//ControlSurface returns the attached control surface.
//
//The returned value is meaningful only when HasControlSurface reports true.
func (v LiftingSurface) ControlSurface() ControlSurface {
	return v.controlSurface
}
