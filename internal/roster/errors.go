package roster

import "errors"

var (
	// ErrValidation wraps malformed or missing request fields
	ErrValidation = errors.New("validation failed")
	// ErrInvalidSlot is returned for a roster position outside the fixed
	// slot vocabulary
	ErrInvalidSlot = errors.New("invalid roster position")
	// ErrPlayerAlreadyRostered is returned when the player is already on
	// this team
	ErrPlayerAlreadyRostered = errors.New("player is already on this roster")
	// ErrNotOnRoster is returned when dropping or moving a player the
	// team does not have
	ErrNotOnRoster = errors.New("player is not on this roster")
)
