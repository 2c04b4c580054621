package model

import "errors"

// Common errors used across the application
var (
	// Verification errors
	ErrVerificationFailed = errors.New("human verification failed")

	// Summoner errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrUnknownRegion  = errors.New("unknown region")

	// Upstream errors
	ErrUpstream = errors.New("upstream service error")
)
