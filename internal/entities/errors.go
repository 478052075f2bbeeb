// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamExists signals team name conflict on the contest platform.
	ErrTeamExists = errors.New("team exists")
	// ErrIDSpaceExhausted signals that no free identifier was found within the attempt cap.
	ErrIDSpaceExhausted = errors.New("id space exhausted")
	// ErrPlatformFetch signals a failed read against the contest platform API.
	ErrPlatformFetch = errors.New("platform fetch failed")
	// ErrPlatformCreate signals a failed create against the contest platform API.
	ErrPlatformCreate = errors.New("platform create failed")
)
