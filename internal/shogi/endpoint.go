package shogi

import (
	"fmt"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
)

const (
	BoardSize = 9

	// HandColumn is the column value that the legacy (row, col) encoding reserves for hand slots.
	HandColumn = 9
)

// Square is a grid cell. Valid squares lie in [0,8]x[0,8].
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Square) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Square) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// offset returns the square reached by moving forward/right from the point of view of colour.
func (that Square) offset(colour Colour, forward, right int) Square {
	dir := colour.forward()
	return Square{Row: that.Row + dir*forward, Col: that.Col + dir*right}
}

func validateSquare(sq Square) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: square %s", apperror.ErrOutOfBounds, sq)
	}
	return nil
}

// Endpoint is either a board square or a slot in a player's hand.
type Endpoint struct {
	hand   bool
	square Square
	owner  Colour
	slot   int
}

// BoardSquare addresses the grid cell at (row, col).
func BoardSquare(row, col int) Endpoint {
	return Endpoint{square: Square{Row: row, Col: col}}
}

// At wraps an existing square.
func At(sq Square) Endpoint {
	return Endpoint{square: sq}
}

// HandSlot addresses entry index of the hand owned by owner.
func HandSlot(owner Colour, index int) Endpoint {
	return Endpoint{hand: true, owner: owner, slot: index}
}

func (that Endpoint) IsHand() bool {
	return that.hand
}

// Square is meaningful only when the endpoint is not a hand slot.
func (that Endpoint) Square() Square {
	return that.square
}

// Owner and Slot are meaningful only for hand slots.
func (that Endpoint) Owner() Colour {
	return that.owner
}

func (that Endpoint) Slot() int {
	return that.slot
}

func (that Endpoint) String() string {
	if that.hand {
		return fmt.Sprintf("hand[%s:%d]", that.owner, that.slot)
	}
	return that.square.String()
}
