package shogi

// step is a displacement expressed from the mover's point of view.
type step struct {
	forward int
	right   int
}

// rule describes how a kind moves: fixed steps (including knight jumps) and unlimited slides.
type rule struct {
	steps  []step
	slides []step
}

const (
	// promotionRanks is the depth of the promotion zone counted from the far edge.
	promotionRanks = 3

	// maxSlide is the longest distance a sliding piece can travel on a 9x9 grid.
	maxSlide = BoardSize - 1
)

var goldSteps = []step{
	{1, 0}, {1, -1}, {1, 1},
	{0, -1}, {0, 1},
	{-1, 0},
}

// movementRules is the single dispatch table for every unpromoted kind.
// Promoted pieces always use Gold's entry.
var movementRules = map[Kind]rule{
	King: {steps: []step{
		{1, -1}, {1, 0}, {1, 1},
		{0, -1}, {0, 1},
		{-1, -1}, {-1, 0}, {-1, 1},
	}},
	Gold: {steps: goldSteps},
	Silver: {steps: []step{
		{1, 0}, {1, -1}, {1, 1},
		{-1, -1}, {-1, 1},
	}},
	Knight: {steps: []step{{2, -1}, {2, 1}}},
	Lance:  {slides: []step{{1, 0}}},
	Bishop: {slides: []step{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}},
	Rook:   {slides: []step{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}},
	Pawn:   {steps: []step{{1, 0}}},
}

// mandatoryRanks is how many of the farthest ranks force promotion for a kind.
var mandatoryRanks = map[Kind]int{
	Pawn:   1,
	Lance:  1,
	Knight: 2,
}

var promotable = map[Kind]bool{
	Silver: true,
	Knight: true,
	Lance:  true,
	Pawn:   true,
}

// ranksFromFarEdge is 0 on the rank farthest from colour's own side.
func ranksFromFarEdge(colour Colour, row int) int {
	if colour == Blue {
		return BoardSize - 1 - row
	}
	return row
}

func generateMoves(board *Board, from Square, colour Colour, r rule) []Square {
	moves := make([]Square, 0, len(r.steps)+len(r.slides)*maxSlide)

	for _, s := range r.steps {
		to := from.offset(colour, s.forward, s.right)
		if !to.IsValid() || board.cell(to).colour == colour {
			continue
		}
		moves = append(moves, to)
	}

	for _, s := range r.slides {
		moves = append(moves, slide(board, from, colour, s)...)
	}

	return moves
}

// slide walks one direction until the edge, an own piece (excluded) or an enemy piece (included).
func slide(board *Board, from Square, colour Colour, s step) []Square {
	var moves []Square
	for i := 1; i <= maxSlide; i++ {
		to := from.offset(colour, i*s.forward, i*s.right)
		if !to.IsValid() || board.cell(to).colour == colour {
			break
		}

		moves = append(moves, to)
		if !board.cell(to).IsEmpty() {
			break
		}
	}
	return moves
}
