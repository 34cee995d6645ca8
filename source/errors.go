package source

import "errors"

var (
	// ErrNegativeRange indicates a negative start position or count.
	ErrNegativeRange = errors.New("source: negative range")

	// ErrNilSource indicates a nil PositionalSource or *sql.DB.
	ErrNilSource = errors.New("source: nil source")

	// ErrInvalidTable indicates an SQL table or column name that is not a plain identifier.
	ErrInvalidTable = errors.New("source: invalid table or column name")
)
