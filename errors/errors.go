/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no row exists for a primary key
	ErrNotFound = errors.New("record not found")

	// ErrInvalidField is returned when a field name is unknown or may not be changed
	ErrInvalidField = errors.New("invalid field")

	// ErrMissingColumn is returned when a row lacks a column for a declared field
	ErrMissingColumn = errors.New("missing column")

	// ErrInvalidMeta is returned when a record type declares unusable table metadata
	ErrInvalidMeta = errors.New("invalid record metadata")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with primary key %q does not exist", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a rejected field name or field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidField
}

// MissingColumnError is returned when a row cannot construct a record
type MissingColumnError struct {
	Type   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("cannot construct %s: row has no column %q", e.Type, e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// MetaError reports a problem with a record type's table metadata
type MetaError struct {
	Type    string
	Message string
}

func (e *MetaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("invalid metadata for %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("invalid metadata: %s", e.Message)
}

func (e *MetaError) Is(target error) bool {
	return target == ErrInvalidMeta
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(recordType, key string) error {
	return &NotFoundError{Type: recordType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewMissingColumnError creates a new MissingColumnError
func NewMissingColumnError(recordType, column string) error {
	return &MissingColumnError{Type: recordType, Column: column}
}

// NewMetaError creates a new MetaError
func NewMetaError(recordType, message string) error {
	return &MetaError{Type: recordType, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is an invalid field error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

// IsMissingColumn checks if an error is a missing column error
func IsMissingColumn(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

// IsInvalidMeta checks if an error is a metadata error
func IsInvalidMeta(err error) bool {
	return errors.Is(err, ErrInvalidMeta)
}
