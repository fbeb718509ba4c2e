package bt

import "errors"

var (
	ErrNilChild        = errors.New("bt: nil child")
	ErrAlreadyOwned    = errors.New("bt: node already has an owner")
	ErrCycle           = errors.New("bt: child would create a cycle")
	ErrRootAlreadySet  = errors.New("bt: root child already set")
	ErrUnknownNodeType = errors.New("bt: unknown node type")
	ErrNoOracle        = errors.New("bt: selector requires an oracle")
	ErrMissingField    = errors.New("bt: missing required field")
	ErrInvalidSpec     = errors.New("bt: invalid tree spec")
	ErrEmptyInput      = errors.New("bt: empty input")
)
