package shogi

import (
	"fmt"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
)

type Kind int

const (
	None Kind = iota
	King
	Rook
	Bishop
	Gold
	Silver
	Knight
	Lance
	Pawn
)

var kindNames = map[Kind]string{
	None:   "none",
	King:   "king",
	Rook:   "rook",
	Bishop: "bishop",
	Gold:   "gold",
	Silver: "silver",
	Knight: "knight",
	Lance:  "lance",
	Pawn:   "pawn",
}

func (that Kind) String() string {
	if name, ok := kindNames[that]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(that))
}

var glyphs = map[Kind]string{
	None:   "  ",
	King:   "玉",
	Rook:   "飛",
	Bishop: "角",
	Gold:   "金",
	Silver: "銀",
	Knight: "桂",
	Lance:  "香",
	Pawn:   "歩",
}

var promotedGlyphs = map[Kind]string{
	Silver: "全",
	Knight: "圭",
	Lance:  "杏",
	Pawn:   "と",
}

// Piece is a value: kind x colour x promotion flag. Promotion and demotion
// never mutate a piece; they return a new value that replaces the old one.
type Piece struct {
	kind     Kind
	colour   Colour
	promoted bool
}

// Empty is the sentinel held by every unoccupied square.
var Empty = Piece{kind: None, colour: NoColour}

func NewPiece(kind Kind, colour Colour) Piece {
	if kind == None {
		return Empty
	}
	return Piece{kind: kind, colour: colour}
}

func (that Piece) Kind() Kind {
	return that.kind
}

func (that Piece) Colour() Colour {
	return that.colour
}

func (that Piece) IsPromoted() bool {
	return that.promoted
}

func (that Piece) IsEmpty() bool {
	return that.kind == None
}

// Glyph is the display character; promoted pieces keep a glyph distinct from Gold.
func (that Piece) Glyph() string {
	if that.promoted {
		return promotedGlyphs[that.kind]
	}
	return glyphs[that.kind]
}

func (that Piece) String() string {
	if that.IsEmpty() {
		return "empty"
	}
	if that.promoted {
		return fmt.Sprintf("%s promoted %s", that.colour, that.kind)
	}
	return fmt.Sprintf("%s %s", that.colour, that.kind)
}

// CanPromote reports whether the piece may promote when standing on sq.
func (that Piece) CanPromote(sq Square) bool {
	if that.promoted || !promotable[that.kind] {
		return false
	}
	return ranksFromFarEdge(that.colour, sq.Row) < promotionRanks
}

// MustPromote reports whether standing on sq forces promotion.
func (that Piece) MustPromote(sq Square) bool {
	if that.promoted {
		return false
	}
	return ranksFromFarEdge(that.colour, sq.Row) < mandatoryRanks[that.kind]
}

// Promoted returns the promoted form, or false when the kind has none.
func (that Piece) Promoted() (Piece, bool) {
	if that.promoted || !promotable[that.kind] {
		return that, false
	}
	that.promoted = true
	return that, true
}

// Unpromoted returns the form the piece had before promotion.
func (that Piece) Unpromoted() Piece {
	that.promoted = false
	return that
}

func (that Piece) withColour(colour Colour) Piece {
	that.colour = colour
	return that
}

func (that Piece) rule() rule {
	if that.promoted {
		return movementRules[Gold]
	}
	return movementRules[that.kind]
}

// Moves returns every destination reachable from from on board.
func (that Piece) Moves(board *Board, from Square) ([]Square, error) {
	if err := validateSquare(from); err != nil {
		return nil, err
	}
	if that.IsEmpty() {
		return nil, fmt.Errorf("%w: no moves from %s", apperror.ErrEmptySquare, from)
	}

	return generateMoves(board, from, that.colour, that.rule()), nil
}

// CanDropAt reports whether the piece, taken from a hand, may be placed on sq.
// Pawns additionally may not share a column with an unpromoted pawn of their colour.
func (that Piece) CanDropAt(board *Board, sq Square) bool {
	if !sq.IsValid() || !board.cell(sq).IsEmpty() {
		return false
	}
	if that.kind == Pawn && board.hasPawnOnColumn(that.colour, sq.Col) {
		return false
	}
	return !that.MustPromote(sq)
}
