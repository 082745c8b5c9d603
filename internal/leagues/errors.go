package leagues

import "errors"

var (
	// ErrNotFound is returned when a league does not exist or is inactive
	ErrNotFound = errors.New("league not found")
	// ErrValidation wraps malformed or missing request fields
	ErrValidation = errors.New("validation failed")
	// ErrAlreadyMember is returned when the user already has a team in the league
	ErrAlreadyMember = errors.New("you are already a member of this league")
	// ErrLeagueFull is returned when the league has no open spots
	ErrLeagueFull = errors.New("this league is full")
	// ErrNotCommissioner is returned when a non-commissioner attempts a
	// league mutation
	ErrNotCommissioner = errors.New("only the commissioner can modify this league")
	// ErrJoinConflict is returned when a join transaction keeps conflicting
	// after the internal retry
	ErrJoinConflict = errors.New("join conflicted with a concurrent request, try again")
)
