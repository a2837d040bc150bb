package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("coordinates out of board bound")
	ErrInvalidCellState = errors.New("invalid cell state")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionInUse     = errors.New("session already connected")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrCellStateInvalid(state uint8) error {
	return fmt.Errorf("%w: %d", ErrInvalidCellState, state)
}

func ErrSessionNotExists(sessionId string) error {
	return fmt.Errorf("%w, session id: %s", ErrSessionNotFound, sessionId)
}

func ErrSessionAlreadyConnected(sessionId string) error {
	return fmt.Errorf("%w, session id: %s", ErrSessionInUse, sessionId)
}
