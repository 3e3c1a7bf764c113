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
	// ErrRemoteRejected is returned when the store received a request and rejected it
	ErrRemoteRejected = errors.New("request rejected by store")

	// ErrTransport is returned when a request never reliably reached the store
	ErrTransport = errors.New("transport failure")

	// ErrNotFound is returned when a path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrNotDirectory is returned when a path exists but is not a directory
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrInvalidConfig is returned when configuration validation fails
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RemoteRejectedError represents a request that made it to the store but was
// rejected with an error response: bad select syntax, auth failure, throttling.
type RemoteRejectedError struct {
	Query      string
	Code       string
	StatusCode int
	RequestID  string
	Message    string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("store rejected query %q: %s (code %s, status %d, request id %s)",
		e.Query, e.Message, e.Code, e.StatusCode, e.RequestID)
}

func (e *RemoteRejectedError) Is(target error) bool {
	return target == ErrRemoteRejected
}

// TransportError represents a client-side failure where the request never
// reliably reached the store, such as a connectivity problem.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failure: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("transport failure: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NotFoundError represents a missing file or directory
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %q not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotDirectoryError represents a path that exists but is not a directory
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("path %q is not a directory", e.Path)
}

func (e *NotDirectoryError) Is(target error) bool {
	return target == ErrNotDirectory
}

// ConfigError represents an invalid or missing configuration option
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid configuration for %q: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Helper functions for creating errors

// NewRemoteRejectedError creates a new RemoteRejectedError
func NewRemoteRejectedError(query, code string, statusCode int, requestID, message string) error {
	return &RemoteRejectedError{
		Query:      query,
		Code:       code,
		StatusCode: statusCode,
		RequestID:  requestID,
		Message:    message,
	}
}

// NewTransportError creates a new TransportError
func NewTransportError(message string, err error) error {
	return &TransportError{Message: message, Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

// NewNotDirectoryError creates a new NotDirectoryError
func NewNotDirectoryError(path string) error {
	return &NotDirectoryError{Path: path}
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) error {
	return &ConfigError{Key: key, Message: message}
}

// IsRemoteRejected checks if an error is a store rejection
func IsRemoteRejected(err error) bool {
	return errors.Is(err, ErrRemoteRejected)
}

// IsTransport checks if an error is a transport failure
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotDirectory checks if an error is a not-a-directory error
func IsNotDirectory(err error) bool {
	return errors.Is(err, ErrNotDirectory)
}

// IsInvalidConfig checks if an error is a configuration error
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
