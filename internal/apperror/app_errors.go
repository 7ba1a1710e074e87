package apperror

import "errors"

var (
	ErrInvalidMove           = errors.New("invalid move")
	ErrSearchOnTerminalBoard = errors.New("search on terminal board")
	ErrGameFinished          = errors.New("game is already finished")
	ErrNotYourTurn           = errors.New("it's not your turn")
	ErrInvalidConfig         = errors.New("invalid config")
)
