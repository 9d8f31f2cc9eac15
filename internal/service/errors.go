package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyItems        = errors.New("a quote must keep at least one item")
	ErrInvalidTransition = errors.New("invalid status transition")
)
