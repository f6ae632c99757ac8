package catalog

import "errors"

// Fixture integrity errors.
var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOwner    = errors.New("unknown owner")
	ErrFixturesInvalid = errors.New("invalid fixtures")
	ErrFixturesRead    = errors.New("cannot read fixtures file")
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidColor       = errors.New("invalid color value")
)
