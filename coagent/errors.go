package coagent

import "errors"

var (
	// ErrEmptyName is returned when options carry no coagent name.
	ErrEmptyName = errors.New("coagent name is empty")
	// ErrNilStore is returned by New when no StateStore is supplied.
	ErrNilStore = errors.New("state store is nil")
)
