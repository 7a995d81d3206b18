package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user account is inactive")
)

// Sighting errors
var (
	ErrSightingNotFound = errors.New("animal sighting not found")
)

// Catalog errors
var (
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrFlightNotFound        = errors.New("flight not found")
)
