package entity

// Marker is the value held by a board cell.
type Marker int

const (
	MarkerEmpty Marker = iota
	MarkerX
	MarkerO
)

func (m Marker) String() string {
	switch m {
	case MarkerX:
		return "X"
	case MarkerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's marker. Empty has no opponent.
func (m Marker) Opponent() Marker {
	switch m {
	case MarkerX:
		return MarkerO
	case MarkerO:
		return MarkerX
	default:
		return MarkerEmpty
	}
}
