package xldump

import (
	"fmt"
)

// OpenError indicates the workbook could not be opened for a pass: the file
// is missing, corrupt, or not a readable xlsx.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open workbook %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// WriteError indicates an output document could not be written. When the
// values write fails the structure file may already exist; that partial
// state is surfaced through this error, not cleaned up.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
