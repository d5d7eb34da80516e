/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors
var (
	// ErrConnection is returned when a connection cannot be established or validated
	ErrConnection = errors.New("connection failed")

	// ErrQuery is returned when a query or count fails after a connection succeeded
	ErrQuery = errors.New("query failed")

	// ErrConversion is returned when documents cannot be assembled into a table
	ErrConversion = errors.New("conversion failed")

	// ErrValidation is returned when required columns are missing from a table
	ErrValidation = errors.New("validation failed")

	// ErrInvalidConnectionString is returned when a connection string fails validation
	ErrInvalidConnectionString = errors.New("invalid connection string")

	// ErrUnknownBackend is returned when a table backend name is not recognized
	ErrUnknownBackend = errors.New("unknown table backend")

	// ErrBackendUnavailable is returned when a known table backend is not registered
	ErrBackendUnavailable = errors.New("table backend not registered")

	// ErrPipelineConsumed is returned when a pipeline is executed more than once
	ErrPipelineConsumed = errors.New("pipeline already executed")
)

// ConnectionError represents a failure to establish or validate a connection
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connection to %s failed: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("connection to %s failed", e.Target)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// QueryError represents a failure of a query or count against a collection
type QueryError struct {
	Database   string
	Collection string
	Op         string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed on %s.%s: %v", e.Op, e.Database, e.Collection, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// ConversionError represents a failure to assemble documents into a table
type ConversionError struct {
	Backend string
	Err     error
}

func (e *ConversionError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("table conversion with backend %q failed: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("table conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ValidationError represents missing required columns in an assembled table
type ValidationError struct {
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	missing := append([]string(nil), e.MissingColumns...)
	sort.Strings(missing)
	return fmt.Sprintf("missing required columns: {%s}", strings.Join(missing, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Helper functions for creating errors

// NewConnectionError creates a new ConnectionError
func NewConnectionError(target string, err error) error {
	return &ConnectionError{Target: target, Err: err}
}

// NewQueryError creates a new QueryError
func NewQueryError(database, collection, op string, err error) error {
	return &QueryError{Database: database, Collection: collection, Op: op, Err: err}
}

// NewConversionError creates a new ConversionError
func NewConversionError(backend string, err error) error {
	return &ConversionError{Backend: backend, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(missingColumns []string) error {
	return &ValidationError{MissingColumns: missingColumns}
}

// IsConnection checks if an error is a connection error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsQuery checks if an error is a query error
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}

// IsConversion checks if an error is a conversion error
func IsConversion(err error) bool {
	return errors.Is(err, ErrConversion)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
