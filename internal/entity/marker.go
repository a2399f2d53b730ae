package entity

// Marker identifies which player occupies a cell. Identity is carried by the
// enum value alone; how a marker is colored or styled is the shell's business.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerX
	MarkerO
)

// Symbol - returns the plain symbol for the marker.
func (that Marker) Symbol() string {
	switch that {
	case MarkerX:
		return "X"
	case MarkerO:
		return "O"
	default:
		return ""
	}
}

// Other - returns the opposing marker.
func (that Marker) Other() Marker {
	if that == MarkerX {
		return MarkerO
	}
	return MarkerX
}
