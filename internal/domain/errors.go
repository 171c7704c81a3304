package domain

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
)

var (
	ErrNotCreator = errors.New("only the creator can modify the game")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
