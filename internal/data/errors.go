package data

import "errors"

// Loader error taxonomy. All loads are all-or-nothing: a bad header or a
// bad cell aborts the whole load, never a partial dataset.
var (
	// ErrSourceNotFound means the input file does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrSchema means required columns are missing or misnamed.
	ErrSchema = errors.New("schema error")
	// ErrValue means a cell could not be parsed as its expected type,
	// a hashrate is negative or non-finite, or a year is duplicated.
	ErrValue = errors.New("value error")
)
