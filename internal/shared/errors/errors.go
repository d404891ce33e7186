// Package errors provides application-level error types and utilities.
// Every engine failure carries a Kind naming the exact condition and a Type
// grouping kinds by HTTP semantics.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorType groups error kinds by their transport semantics
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation_error"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeConflict    ErrorType = "conflict"
	ErrorTypeInternal    ErrorType = "internal_error"
	ErrorTypeBadRequest  ErrorType = "bad_request"
	ErrorTypeUnavailable ErrorType = "service_unavailable"
	ErrorTypeRateLimited ErrorType = "rate_limited"
)

// Kind names a specific failure condition of the content engine
type Kind string

const (
	KindDuplicateCode           Kind = "DuplicateCodeError"
	KindDuplicateColumnName     Kind = "DuplicateColumnNameError"
	KindInvalidColumnSpec       Kind = "InvalidColumnSpecError"
	KindUnknownCategory         Kind = "UnknownCategoryError"
	KindCategoryInUse           Kind = "CategoryInUseError"
	KindUnknownModule           Kind = "UnknownModuleError"
	KindRecordNotFound          Kind = "RecordNotFoundError"
	KindRequiredFieldMissing    Kind = "RequiredFieldMissingError"
	KindUniqueViolation         Kind = "UniqueConstraintViolationError"
	KindDanglingForeignKey      Kind = "DanglingForeignKeyError"
	KindInvalidOption           Kind = "InvalidOptionError"
	KindTypeMismatch            Kind = "TypeMismatchError"
	KindInvalidFilter           Kind = "InvalidFilterError"
	KindStorageUnavailable      Kind = "StorageUnavailableError"
	KindInternalInvariant       Kind = "InternalInvariantViolation"
	KindInvalidRequest          Kind = "InvalidRequestError"
	KindUnknownLanguage         Kind = "UnknownLanguageError"
	KindUnknownColumnDefinition Kind = "UnknownColumnDefinitionError"
	KindRateLimited             Kind = "RateLimitExceededError"
)

var kindTypes = map[Kind]ErrorType{
	KindDuplicateCode:           ErrorTypeConflict,
	KindDuplicateColumnName:     ErrorTypeConflict,
	KindInvalidColumnSpec:       ErrorTypeValidation,
	KindUnknownCategory:         ErrorTypeNotFound,
	KindCategoryInUse:           ErrorTypeConflict,
	KindUnknownModule:           ErrorTypeNotFound,
	KindRecordNotFound:          ErrorTypeNotFound,
	KindRequiredFieldMissing:    ErrorTypeValidation,
	KindUniqueViolation:         ErrorTypeConflict,
	KindDanglingForeignKey:      ErrorTypeValidation,
	KindInvalidOption:           ErrorTypeValidation,
	KindTypeMismatch:            ErrorTypeValidation,
	KindInvalidFilter:           ErrorTypeBadRequest,
	KindStorageUnavailable:      ErrorTypeUnavailable,
	KindInternalInvariant:       ErrorTypeInternal,
	KindInvalidRequest:          ErrorTypeBadRequest,
	KindUnknownLanguage:         ErrorTypeNotFound,
	KindUnknownColumnDefinition: ErrorTypeNotFound,
	KindRateLimited:             ErrorTypeRateLimited,
}

var typeStatus = map[ErrorType]int{
	ErrorTypeValidation:  http.StatusUnprocessableEntity,
	ErrorTypeNotFound:    http.StatusNotFound,
	ErrorTypeConflict:    http.StatusConflict,
	ErrorTypeInternal:    http.StatusInternalServerError,
	ErrorTypeBadRequest:  http.StatusBadRequest,
	ErrorTypeUnavailable: http.StatusServiceUnavailable,
	ErrorTypeRateLimited: http.StatusTooManyRequests,
}

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	// Field is the record attribute a validation error refers to, if any.
	Field string `json:"field,omitempty"`
	cause error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if one was attached
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an AppError of the same kind, so sentinel
// comparisons like errors.Is(err, ErrUnknownModule) work on wrapped values.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	if !ok {
		return false
	}
	if other == e {
		return true
	}
	return other.Message == "" && other.Kind == e.Kind
}

// New creates an error of the given kind.
func New(kind Kind, message string, details ...string) *AppError {
	errType, ok := kindTypes[kind]
	if !ok {
		errType = ErrorTypeInternal
	}
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Kind:    kind,
		Message: message,
		Code:    typeStatus[errType],
		Details: detail,
	}
}

// Sentinel returns a message-less error of kind, usable as an errors.Is target.
func Sentinel(kind Kind) *AppError {
	return &AppError{Kind: kind, Type: kindTypes[kind]}
}

// WithField attaches the offending attribute name.
func (e *AppError) WithField(field string) *AppError {
	e.Field = field
	return e
}

// WithCause records the underlying error without exposing it to clients.
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

// NewValidationError creates a generic request validation error
func NewValidationError(message string, details ...string) *AppError {
	return New(KindInvalidRequest, message, details...)
}

// NewStorageError wraps a storage-layer failure. The cause is kept for logs only.
func NewStorageError(operation string, cause error) *AppError {
	return New(KindStorageUnavailable, "storage unavailable", operation).WithCause(cause)
}

// NewInvariantError reports a programming or configuration defect.
func NewInvariantError(message string, details ...string) *AppError {
	return New(KindInternalInvariant, message, details...)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// KindOf returns the kind of err, or the empty kind for foreign errors.
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return ""
}

// IsKind checks whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite
	return strings.Contains(errStr, "UNIQUE constraint failed")
}

// IsForeignKeyError checks if the error is a database foreign key violation
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "foreign key constraint") ||
		strings.Contains(errStr, "FOREIGN KEY constraint failed")
}
