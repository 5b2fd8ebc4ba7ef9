package autils

import (
	"github.com/gofrs/uuid/v5"
)

// Package autils provides utility functions for working with UUIDs.
// It uses the gofrs/uuid library to generate and parse UUIDs.
// Reference: https://github.com/gofrs/uuid

// NewUUID generates a new UUID version 7 and returns it.
func NewUUID() uuid.UUID {
	u7, _ := uuid.NewV7()
	return u7
}

// NewUUIDAsString returns the string representation of a new UUID version 7.
// CreateTempDirWithOptions uses it to name temp directories when no name is
// given, or to suffix the name when AppendUUIDv4 is set.
func NewUUIDAsString() string {
	return NewUUID().String()
}
