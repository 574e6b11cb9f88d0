package shogi

// Colour identifies ownership. Equality of two colours is the ownership test.
type Colour struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var (
	Red  = Colour{Name: "red", Value: "#ff0000"}
	Blue = Colour{Name: "blue", Value: "#0000ff"}

	// NoColour tags the Empty sentinel.
	NoColour = Colour{Name: "empty", Value: "#ffffff"}
)

// Opponent returns the other player colour. NoColour has no opponent.
func (that Colour) Opponent() Colour {
	switch that {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoColour
	}
}

func (that Colour) String() string {
	return that.Name
}

// forward is the row delta of one step of advance: Blue moves toward row 8, Red toward row 0.
func (that Colour) forward() int {
	if that == Blue {
		return 1
	}
	return -1
}
