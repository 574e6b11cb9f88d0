package shogi

import (
	"fmt"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
)

var backRank = [BoardSize]Kind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}

// Board is one game session: the grid, both players, the turn pointer and the game-over flag.
// It is not safe for concurrent use.
type Board struct {
	squares  [BoardSize][BoardSize]Piece
	red      *Player
	blue     *Player
	current  *Player
	gameOver bool
}

// NewBoard lays out the opening position. Blue owns row 0 and moves first.
func NewBoard(blueName, redName string) *Board {
	board := &Board{
		red:  NewPlayer(redName, Red),
		blue: NewPlayer(blueName, Blue),
	}
	board.current = board.blue

	for row := range board.squares {
		for col := range board.squares[row] {
			board.squares[row][col] = Empty
		}
	}

	for col, kind := range backRank {
		board.squares[0][col] = NewPiece(kind, Blue)
		board.squares[BoardSize-1][col] = NewPiece(kind, Red)
		board.squares[2][col] = NewPiece(Pawn, Blue)
		board.squares[BoardSize-3][col] = NewPiece(Pawn, Red)
	}

	board.squares[1][1] = NewPiece(Bishop, Blue)
	board.squares[1][7] = NewPiece(Rook, Blue)
	board.squares[7][1] = NewPiece(Rook, Red)
	board.squares[7][7] = NewPiece(Bishop, Red)

	return board
}

func (that *Board) cell(sq Square) Piece {
	return that.squares[sq.Row][sq.Col]
}

func (that *Board) hasPawnOnColumn(colour Colour, col int) bool {
	for row := 0; row < BoardSize; row++ {
		piece := that.squares[row][col]
		if piece.kind == Pawn && !piece.promoted && piece.colour == colour {
			return true
		}
	}
	return false
}

// Locate decodes the legacy (row, col) pair where column 9 addresses the current player's hand.
func (that *Board) Locate(row, col int) (Endpoint, error) {
	if col == HandColumn {
		if row < 0 || row >= that.current.HandSize() {
			return Endpoint{}, fmt.Errorf("%w: hand index %d", apperror.ErrOutOfBounds, row)
		}
		return HandSlot(that.current.Colour, row), nil
	}

	sq := Square{Row: row, Col: col}
	if err := validateSquare(sq); err != nil {
		return Endpoint{}, err
	}
	return At(sq), nil
}

// At returns the piece on a square or in a hand slot of the player to move.
func (that *Board) At(at Endpoint) (Piece, error) {
	if at.IsHand() {
		if at.Owner() != that.current.Colour {
			return Empty, fmt.Errorf("%w: %s", apperror.ErrForeignHand, at)
		}
		return that.current.handPiece(at.Slot())
	}

	if err := validateSquare(at.Square()); err != nil {
		return Empty, err
	}
	return that.cell(at.Square()), nil
}

// ValidMoves lists destinations for the piece at an endpoint. For a hand slot it is every
// square, in row-major order, where the piece may be dropped.
func (that *Board) ValidMoves(from Endpoint) ([]Square, error) {
	piece, err := that.At(from)
	if err != nil {
		return nil, err
	}

	if !from.IsHand() {
		return piece.Moves(that, from.Square())
	}

	var moves []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Square{Row: row, Col: col}
			if piece.CanDropAt(that, sq) {
				moves = append(moves, sq)
			}
		}
	}
	return moves, nil
}

// MovePiece applies a move or a drop for the player to move without checking legality.
// Any occupant of dst is captured into the mover's hand and returned; Empty is returned otherwise.
// A piece that lands where promotion is mandatory is promoted, drops included.
func (that *Board) MovePiece(src Endpoint, dst Square) (Piece, error) {
	if err := validateSquare(dst); err != nil {
		return Empty, err
	}

	piece, err := that.At(src)
	if err != nil {
		return Empty, err
	}
	if piece.IsEmpty() {
		return Empty, fmt.Errorf("%w: nothing to move from %s", apperror.ErrEmptySquare, src)
	}

	captured := that.cell(dst)
	if !captured.IsEmpty() {
		that.current.addToHand(captured.Unpromoted().withColour(that.current.Colour))
		if captured.kind == King {
			that.gameOver = true
		}
	}

	if src.IsHand() {
		that.current.removeFromHand(src.Slot())
	} else {
		that.squares[src.Square().Row][src.Square().Col] = Empty
	}

	if piece.MustPromote(dst) {
		piece, _ = piece.Promoted()
	}
	that.squares[dst.Row][dst.Col] = piece

	return captured, nil
}

// Promote replaces the piece on sq with its promoted form.
func (that *Board) Promote(sq Square) error {
	if err := validateSquare(sq); err != nil {
		return err
	}

	piece := that.cell(sq)
	if !piece.CanPromote(sq) {
		return fmt.Errorf("%w: %s at %s", apperror.ErrIllegalPromotion, piece, sq)
	}

	promoted, _ := piece.Promoted()
	that.squares[sq.Row][sq.Col] = promoted
	return nil
}

func (that *Board) NextPlayer() {
	if that.current == that.blue {
		that.current = that.red
		return
	}
	that.current = that.blue
}

func (that *Board) CurrentPlayer() *Player {
	return that.current
}

// GameOver is set once a King is captured and never cleared. The board keeps accepting
// commands afterwards; refusing them is up to the caller.
func (that *Board) GameOver() bool {
	return that.gameOver
}

func (that *Board) Red() *Player {
	return that.red
}

func (that *Board) Blue() *Player {
	return that.blue
}

// Player returns the player owning colour, or nil for NoColour.
func (that *Board) Player(colour Colour) *Player {
	switch colour {
	case Red:
		return that.red
	case Blue:
		return that.blue
	default:
		return nil
	}
}

// Squares returns a snapshot of the grid.
func (that *Board) Squares() [BoardSize][BoardSize]Piece {
	return that.squares
}
