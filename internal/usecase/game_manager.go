package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/shogi-engine/internal/apperror"
	"github.com/rocketscienceinc/shogi-engine/internal/shogi"
)

// TurnResult describes a turn applied by MakeTurn.
type TurnResult struct {
	Mover    shogi.Colour `json:"mover"`
	From     string       `json:"from"`
	To       shogi.Square `json:"to"`
	Captured shogi.Piece  `json:"-"`
	Promoted bool         `json:"promoted"`
	GameOver bool         `json:"game_over"`
	Winner   shogi.Colour `json:"winner"`
}

// GameManager drives a single board: it enforces turn order and legality
// that the board itself leaves to its caller.
type GameManager struct {
	logger *slog.Logger
	board  *shogi.Board
	winner shogi.Colour
}

func NewGameManager(logger *slog.Logger, blueName, redName string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		board:  shogi.NewBoard(blueName, redName),
		winner: shogi.NoColour,
	}
}

func (that *GameManager) Board() *shogi.Board {
	return that.board
}

// Winner is NoColour until a King has been captured.
func (that *GameManager) Winner() shogi.Colour {
	return that.winner
}

// Select returns the destinations available from an endpoint owned by the player to move.
func (that *GameManager) Select(from shogi.Endpoint) ([]shogi.Square, error) {
	if that.board.GameOver() {
		return nil, apperror.ErrGameFinished
	}

	if err := that.checkOwner(from); err != nil {
		return nil, err
	}

	moves, err := that.board.ValidMoves(from)
	if err != nil {
		return nil, fmt.Errorf("failed to get valid moves: %w", err)
	}

	return moves, nil
}

// MakeTurn validates and applies a move or drop, optionally promotes, and passes the turn.
func (that *GameManager) MakeTurn(from shogi.Endpoint, to shogi.Square, promote bool) (TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "from", from.String(), "to", to.String())

	mover := that.board.CurrentPlayer().Colour

	moves, err := that.Select(from)
	if err != nil {
		log.Warn("turn rejected", "error", err)
		return TurnResult{}, err
	}

	if !slices.Contains(moves, to) {
		log.Warn("turn rejected", "error", apperror.ErrIllegalMove)
		return TurnResult{}, fmt.Errorf("%w: %s to %s", apperror.ErrIllegalMove, from, to)
	}

	captured, err := that.board.MovePiece(from, to)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to move piece: %w", err)
	}

	if promote {
		if err = that.board.Promote(to); err != nil {
			if !errors.Is(err, apperror.ErrIllegalPromotion) {
				return TurnResult{}, fmt.Errorf("failed to promote: %w", err)
			}
			log.Debug("promotion ignored", "error", err)
		}
	}

	if that.board.GameOver() && that.winner == shogi.NoColour {
		that.winner = mover
	}

	piece, err := that.board.At(shogi.At(to))
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to read destination: %w", err)
	}

	that.board.NextPlayer()

	result := TurnResult{
		Mover:    mover,
		From:     from.String(),
		To:       to,
		Captured: captured,
		Promoted: piece.IsPromoted(),
		GameOver: that.board.GameOver(),
		Winner:   that.winner,
	}

	log.Info("turn applied",
		"mover", mover.String(),
		"piece", piece.String(),
		"captured", captured.String(),
		"promoted", result.Promoted,
		"game_over", result.GameOver,
	)

	return result, nil
}

func (that *GameManager) checkOwner(from shogi.Endpoint) error {
	current := that.board.CurrentPlayer().Colour

	if from.IsHand() {
		if from.Owner() != current {
			return fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, from)
		}
		return nil
	}

	piece, err := that.board.At(from)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	if piece.IsEmpty() {
		return fmt.Errorf("%w: %s", apperror.ErrEmptySquare, from)
	}

	if piece.Colour() != current {
		return fmt.Errorf("%w: %s belongs to %s", apperror.ErrNotYourTurn, from, piece.Colour())
	}

	return nil
}
