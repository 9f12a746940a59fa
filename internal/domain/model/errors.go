package model

import "errors"

var (
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrOutOfRange = errors.New("out of range")
	ErrBadRequest = errors.New("bad request")
	ErrUpstream   = errors.New("upstream failure")
)
