package apperror

import "errors"

var (
	ErrIllegalPromotion = errors.New("illegal promotion")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrForeignHand      = errors.New("hand slot does not belong to the player to move")
	ErrEmptySquare      = errors.New("square is empty")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrIllegalMove  = errors.New("illegal move")
)
