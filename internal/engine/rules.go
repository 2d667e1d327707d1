// Package engine provides chess move generation, legality checking and
// move application.
//
// All operations are pure: they read a *chess.Position and never modify it.
// Hypothetical moves are simulated on copies. The package-level functions
// use a shared uncached Rules value; callers that want memoised move
// profiles build their own with NewRules(WithProfileCache(...)).
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Rules evaluates chess rules against positions. The zero value is usable
// and performs no caching. A Rules value is safe for concurrent use.
type Rules struct {
	cache *hashing.ProfileCache
}

// Option configures a Rules value.
type Option func(*Rules)

// WithProfileCache memoises move profiles in the given cache.
func WithProfileCache(cache *hashing.ProfileCache) Option {
	return func(r *Rules) {
		r.cache = cache
	}
}

// NewRules creates a Rules value using functional options.
func NewRules(opts ...Option) *Rules {
	r := &Rules{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the profile cache, or nil when caching is disabled.
func (r *Rules) Cache() *hashing.ProfileCache {
	return r.cache
}

var defaultRules = NewRules()

// Profile returns the move profile of the piece on sq. See Rules.Profile.
func Profile(pos *chess.Position, sq chess.Square) (chess.Matrix, error) {
	return defaultRules.Profile(pos, sq)
}

// InCheck reports whether colour's king is attacked. See Rules.InCheck.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	return defaultRules.InCheck(pos, colour)
}

// IsSquareAttacked reports whether any piece of colour by attacks sq.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) (bool, error) {
	return defaultRules.IsSquareAttacked(pos, sq, by)
}

// IsLegal reports whether colour may move the piece on from to to.
func IsLegal(pos *chess.Position, colour chess.Colour, from, to chess.Square) (bool, error) {
	return defaultRules.IsLegal(pos, colour, from, to)
}

// ValidMoves returns the legal destinations of the piece on from.
func ValidMoves(pos *chess.Position, colour chess.Colour, from chess.Square) ([]chess.Square, error) {
	return defaultRules.ValidMoves(pos, colour, from)
}

// PossibleMoves maps every piece of colour that can move to its legal destinations.
func PossibleMoves(pos *chess.Position, colour chess.Colour) map[chess.Square][]chess.Square {
	return defaultRules.PossibleMoves(pos, colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	return defaultRules.HasLegalMoves(pos, colour)
}

// LegalMoves lists every legal move of the side to move.
func LegalMoves(pos *chess.Position) []chess.Move {
	return defaultRules.LegalMoves(pos)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return defaultRules.IsCheckmate(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return defaultRules.IsStalemate(pos)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) GameStatus {
	return defaultRules.Status(pos)
}

// ApplyMove plays a move and returns the resulting position.
func ApplyMove(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	return defaultRules.ApplyMove(pos, move)
}
