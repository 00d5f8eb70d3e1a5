package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyCatalog = errors.New("empty panel configuration catalog")
)
