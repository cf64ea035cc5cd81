package engine

import "errors"

var (
	// ErrInvalidMove means validation rejected a source→destination pair.
	// Illegal moves are routine, not faults; the game is left untouched.
	ErrInvalidMove = errors.New("invalid move")
	// ErrTransferFailed means a pile refused a take or receive, such as
	// taking more cards than it holds or feeding a multi-card run to a
	// single-card pile.
	ErrTransferFailed = errors.New("card transfer failed")
)
