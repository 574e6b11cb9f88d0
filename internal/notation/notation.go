package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/shogi-engine/internal/shogi"
)

var ErrBadNotation = errors.New("bad move notation")

// columns follow the board printer labels: A is column 0.
const columns = "ABCDEFGHI"

var reMove = regexp.MustCompile(`^([A-I][1-9]|X[1-9][0-9]*)-([A-I][1-9])(\+)?$`)

// Move is one parsed script line.
type Move struct {
	From    shogi.Endpoint
	To      shogi.Square
	Promote bool
}

// ParseMove parses "<from>-<to>[+]", e.g. "C3-C4", "X1-E5" or "H2-H7+".
// Hand entries X<n> are 1-based and belong to mover.
func ParseMove(s string, mover shogi.Colour) (Move, error) {
	m := reMove.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	to, err := ParseSquare(m[2])
	if err != nil {
		return Move{}, err
	}

	move := Move{To: to, Promote: m[3] == "+"}

	if m[1][0] == 'X' {
		n, err := strconv.Atoi(m[1][1:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: hand index %q", ErrBadNotation, m[1])
		}
		move.From = shogi.HandSlot(mover, n-1)
		return move, nil
	}

	from, err := ParseSquare(m[1])
	if err != nil {
		return Move{}, err
	}
	move.From = shogi.At(from)

	return move, nil
}

// ParseSquare parses a column letter followed by a row digit, e.g. "E5".
func ParseSquare(s string) (shogi.Square, error) {
	if len(s) != 2 {
		return shogi.Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}

	col := strings.IndexByte(columns, s[0])
	row := int(s[1] - '1')

	sq := shogi.Square{Row: row, Col: col}
	if !sq.IsValid() {
		return shogi.Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}

	return sq, nil
}

func FormatSquare(sq shogi.Square) string {
	if !sq.IsValid() {
		return sq.String()
	}
	return fmt.Sprintf("%c%d", columns[sq.Col], sq.Row+1)
}

func FormatEndpoint(at shogi.Endpoint) string {
	if at.IsHand() {
		return fmt.Sprintf("X%d", at.Slot()+1)
	}
	return FormatSquare(at.Square())
}

// ReadScript returns the move lines of a script, skipping blanks and # comments.
func ReadScript(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return lines, nil
}
