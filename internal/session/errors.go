package session

import (
	"errors"

	"github.com/san-kum/algoviz/internal/algo"
)

// Rejections returned by Start. None of them touch the dataset.
var (
	// ErrNoDataset indicates Start was called before any Generate.
	ErrNoDataset = errors.New("session: no dataset, generate one first")

	// ErrInvalidTarget indicates a search was requested without an integer target.
	ErrInvalidTarget = errors.New("session: search needs an integer target")

	// ErrInvalidDelay indicates a non-positive checkpoint delay.
	ErrInvalidDelay = errors.New("session: delay must be positive")

	// ErrUnknownAlgorithm is algo.ErrUnknownAlgorithm, re-exported for callers
	// that only import session.
	ErrUnknownAlgorithm = algo.ErrUnknownAlgorithm
)
