package repository

import "errors"

var (
	ErrIndexConflict    = errors.New("series index already taken")
	ErrNotFound         = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already marked complete")
)
