// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 playing area.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrMissingPromotion indicates a pawn reaching the last rank without a promotion kind.
	ErrMissingPromotion = errors.New("missing promotion piece")

	// ErrInvalidPromotion indicates a promotion kind other than rook, knight,
	// bishop or queen, or a promotion supplied for a move that does not promote.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Reason classifies why a move was rejected.
type Reason int

const (
	ReasonNoPiece Reason = iota
	ReasonWrongSide
	ReasonBlocked
	ReasonExposesKing
	ReasonNoCastlingRights
	ReasonAttackedTransit
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNoPiece:
		return "no piece on source square"
	case ReasonWrongSide:
		return "piece belongs to the other side"
	case ReasonBlocked:
		return "target not reachable"
	case ReasonExposesKing:
		return "leaves own king in check"
	case ReasonNoCastlingRights:
		return "castling rights lost"
	case ReasonAttackedTransit:
		return "king passes through an attacked square"
	default:
		return "unknown"
	}
}

// IllegalMoveError wraps ErrIllegalMove with the rejected move and the reason.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type IllegalMoveError struct {
	Move   string // The move in coordinate notation
	Reason Reason
}

// Error returns a formatted error message including the move and reason.
func (e *IllegalMoveError) Error() string {
	if e.Move == "" {
		return fmt.Sprintf("%v: %v", ErrIllegalMove, e.Reason)
	}
	return fmt.Sprintf("%v %s: %v", ErrIllegalMove, e.Move, e.Reason)
}

// Unwrap returns ErrIllegalMove, enabling errors.Is() to match the sentinel.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// NewIllegalMove builds an IllegalMoveError.
func NewIllegalMove(move string, reason Reason) error {
	return &IllegalMoveError{Move: move, Reason: reason}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
