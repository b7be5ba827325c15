package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewPersistenceConflict wraps a server-side constraint violation message.
// The message comes from the database engine (constraint name or the text of
// a guard clause inside a stored operation) and is shown to the end user as-is.
func NewPersistenceConflict(message string) *DomainError {
	return &DomainError{
		Code:    "PERSISTENCE_CONFLICT",
		Message: message,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
