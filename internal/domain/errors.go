package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Action errors
	ErrMsgInvalidAction     = "invalid action"
	ErrMsgCellOccupied      = "cell is already planted"
	ErrMsgWrongSeason       = "plant cannot grow this season"
	ErrMsgNoSeeds           = "no seeds left"
	ErrMsgCellEmpty         = "nothing planted here"
	ErrMsgNotReady          = "crop is not ready yet"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUnknownPlant      = "unknown plant"
	ErrMsgOutOfBounds       = "cell is outside the farm"

	// Save errors
	ErrMsgCorruptSave = "corrupt save"
	ErrMsgNoSave      = "no save found"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"
)

// InvalidAction errors are expected, non-fatal player mistakes. Every one of
// them matches errors.Is(err, ErrInvalidAction) and leaves state untouched.
var (
	ErrInvalidAction = errors.New(ErrMsgInvalidAction)

	ErrCellOccupied      = actionError(ErrMsgCellOccupied)
	ErrWrongSeason       = actionError(ErrMsgWrongSeason)
	ErrNoSeeds           = actionError(ErrMsgNoSeeds)
	ErrCellEmpty         = actionError(ErrMsgCellEmpty)
	ErrNotReady          = actionError(ErrMsgNotReady)
	ErrInsufficientFunds = actionError(ErrMsgInsufficientFunds)
	ErrUnknownPlant      = actionError(ErrMsgUnknownPlant)
	ErrOutOfBounds       = actionError(ErrMsgOutOfBounds)
)

// Persistence errors
var (
	ErrCorruptSave = errors.New(ErrMsgCorruptSave)
	ErrNoSave      = errors.New(ErrMsgNoSave)
)

// Catalog errors
var (
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)

func actionError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, msg)
}
