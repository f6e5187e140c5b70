package usecase

import "errors"

var (
	ErrUnauthorized    = errors.New("Unauthorized")
	ErrInternal        = errors.New("Internal server error")
	ErrInvalidInput    = errors.New("Invalid input")
	ErrProjectNotFound = errors.New("Project not found")
	ErrProfileNotFound = errors.New("Profile not found")
	ErrAlreadyUpvoted  = errors.New("Already upvoted")
	ErrNotFound        = errors.New("Not found")
)
