package model

import "errors"

var (
	// ErrNotFound indicates the entity is missing or not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrDuplicatePhone indicates the phone number is already registered.
	ErrDuplicatePhone = errors.New("phone already registered")
)
