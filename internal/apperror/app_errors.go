package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourPiece = errors.New("there is no piece of yours on that square")
	ErrIllegalMove  = errors.New("move is not legal")
	ErrKingImmune   = errors.New("king cannot be captured yet")
)
