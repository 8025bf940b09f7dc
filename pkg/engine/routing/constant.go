package routing

import "errors"

var (
	ErrInvalidEndpoint  = errors.New("origin or destination is not an active landmark of the building")
	ErrNoPathFound      = errors.New("no path found")
	ErrInvalidAlgorithm = errors.New("unknown routing algorithm")
)
