package shogi

import (
	"fmt"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
)

// Player holds identity, colour and the ordered hand of captured pieces.
type Player struct {
	Name   string `json:"name"`
	Colour Colour `json:"colour"`

	hand []Piece
}

func NewPlayer(name string, colour Colour) *Player {
	return &Player{
		Name:   name,
		Colour: colour,
		hand:   []Piece{},
	}
}

// Hand returns a copy of the hand in capture order.
func (that *Player) Hand() []Piece {
	hand := make([]Piece, len(that.hand))
	copy(hand, that.hand)
	return hand
}

func (that *Player) HandSize() int {
	return len(that.hand)
}

func (that *Player) handPiece(index int) (Piece, error) {
	if index < 0 || index >= len(that.hand) {
		return Empty, fmt.Errorf("%w: hand index %d of %d", apperror.ErrOutOfBounds, index, len(that.hand))
	}
	return that.hand[index], nil
}

func (that *Player) addToHand(piece Piece) {
	that.hand = append(that.hand, piece)
}

// removeFromHand drops entry index, shifting later entries down. Index must be valid.
func (that *Player) removeFromHand(index int) {
	that.hand = append(that.hand[:index], that.hand[index+1:]...)
}

func (that *Player) String() string {
	return that.Name
}
