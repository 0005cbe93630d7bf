package tripsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be read as the expected format.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrParseTimeout indicates reading the input took longer than allowed.
var ErrParseTimeout = errors.New("parse timed out")

// ConversionError represents an error while converting one file.
type ConversionError struct {
	File  string
	Stage string // "open", "parse", "export"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(file, stage string, err error) *ConversionError {
	return &ConversionError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
