package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateCode  = errors.New("code already exists")
)
