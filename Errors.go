package go_aerogeometry

import "fmt"

//InvalidInputError reports a configuration record that cannot be turned
//into a valid lifting surface: a required field is missing, holds a value
//of the wrong kind, or violates an ordering constraint.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

//DegenerateGeometryError reports a derived ratio whose denominator is zero
//where the physical quantity is mandatory.
//
//Ratio names the descriptor that could not be derived and Denominator names
//the quantity that was zero.
type DegenerateGeometryError struct {
	Ratio       string
	Denominator string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s is undefined because %s is zero", e.Ratio, e.Denominator)
}
