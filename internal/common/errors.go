// Package common defines shared sentinel errors used across jobtrack
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Record access errors.
	ErrNotFound = errors.New("not found")

	// Session / authorization errors.
	ErrAuthRequired    = errors.New("login required")
	ErrOwnershipDenied = errors.New("record belongs to another user")

	// Auth flow errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountExists      = errors.New("account already exists")
)
