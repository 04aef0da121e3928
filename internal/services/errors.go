package services

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnsupportedFile  = errors.New("unsupported file type, use PDF, images, or text files")
	ErrNoEmailContent   = errors.New("no email content found")
	ErrUnparseableReply = errors.New("failed to parse model response")
)

// invalid wraps a human-readable message so handlers can map it to a 400
// while keeping errors.Is(err, ErrInvalidInput) working.
func invalid(msg string) error {
	return &invalidError{msg: msg}
}

type invalidError struct {
	msg string
}

func (e *invalidError) Error() string { return e.msg }

func (e *invalidError) Is(target error) bool { return target == ErrInvalidInput }
