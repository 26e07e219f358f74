package go_aerogeometry

import "github.com/aerotools-dev/go_aerogeometry/amath/unit"

//StationPair keeps a dimension measured at the two spanwise stations of a
//control surface: its root end and its tip end.
//
//The ends are named fields rather than a two-element list so the root and
//the tip cannot be swapped by an index mistake.
type StationPair struct {
	root unit.Distance
	tip  unit.Distance
}

//CreateStationPair creates a root/tip pair of dimensions
func CreateStationPair(root unit.Distance, tip unit.Distance) StationPair {
	return StationPair{root: root, tip: tip}
}

//Root returns the dimension at the root end
func (v StationPair) Root() unit.Distance {
	return v.root
}

//Tip returns the dimension at the tip end
func (v StationPair) Tip() unit.Distance {
	return v.tip
}

//ControlSurface keeps the raw dimensions of a movable surface (aileron,
//flap, elevator) occupying a sub-span and sub-chord region of its parent
//lifting surface.
type ControlSurface struct {
	name             string
	spanwiseFromRoot StationPair
	chord            StationPair
	thickness        StationPair
}

//CreateControlSurface creates the control surface record.
//
//spanwiseFromRoot keeps the spanwise distances from the parent surface root
//to the inboard and outboard ends of the control surface, chord and
//thickness keep the control surface chord and thickness at those ends.
func CreateControlSurface(name string, spanwiseFromRoot StationPair, chord StationPair, thickness StationPair) ControlSurface {
	return ControlSurface{
		name:             name,
		spanwiseFromRoot: spanwiseFromRoot,
		chord:            chord,
		thickness:        thickness,
	}
}

//Name returns the control surface name
func (v ControlSurface) Name() string {
	return v.name
}

//SpanwiseFromRoot returns the spanwise distances from the parent surface
//root to the ends of the control surface
func (v ControlSurface) SpanwiseFromRoot() StationPair {
	return v.spanwiseFromRoot
}

//Chord returns the control surface chord at its ends
func (v ControlSurface) Chord() StationPair {
	return v.chord
}

//Thickness returns the control surface thickness at its ends
func (v ControlSurface) Thickness() StationPair {
	return v.thickness
}
