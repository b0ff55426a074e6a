package services

import "errors"

var (
	// ErrNotFound covers both missing resources and resources hidden from the
	// caller. Cross-tenant lookups must be indistinguishable from absence.
	ErrNotFound = errors.New("not found")

	ErrNotOwner         = errors.New("not the owner of this recipe")
	ErrAlreadyFavorited = errors.New("already favorited")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 8 characters")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrDuplicateSlot    = errors.New("recipe already planned for this date and meal")
)
