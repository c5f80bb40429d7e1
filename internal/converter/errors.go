package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrOutputWrite indicates the WAV file could not be written
	ErrOutputWrite = errors.New("writing WAV output failed")

	// ErrNoDecoder indicates no decoder is registered for the file's extension
	ErrNoDecoder = errors.New("no decoder for file format")
)

// FileError records which step failed for which file.
type FileError struct {
	Op   string // discover, decode, write or convert
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func newFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}
