package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found with id: %s", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError.
// Only the entity kind is compared so sentinel values match id-carrying instances.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when a unique field collides
type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with %s '%s' already exists", e.Entity, e.Field, e.Value)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidOperationError represents an operation that is valid in general
// but not in the entity's current state
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidOperationError
func (e *InvalidOperationError) Is(target error) bool {
	t, ok := target.(*InvalidOperationError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// ValidationErrors represents malformed input caught before domain logic runs,
// as a field name to message map
type ValidationErrors struct {
	Fields map[string]string
}

func (e *ValidationErrors) Error() string {
	return "validation failed"
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "Team"}
	ErrMemberNotFound  = &NotFoundError{Entity: "Team member"}
	ErrProjectNotFound = &NotFoundError{Entity: "Project"}
)

// Already Exists Errors
var (
	ErrTeamNameExists    = &AlreadyExistsError{Entity: "Team", Field: "name"}
	ErrMemberEmailExists = &AlreadyExistsError{Entity: "Member", Field: "email"}
	ErrProjectNameExists = &AlreadyExistsError{Entity: "Project", Field: "name"}
)

// Invalid Operation Errors
var (
	ErrMemberNotAssigned = &InvalidOperationError{Message: "Member is not assigned to any team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInvalidOperation checks if an error is an InvalidOperationError
func IsInvalidOperation(err error) bool {
	var invalidErr *InvalidOperationError
	return errors.As(err, &invalidErr)
}

// IsValidation checks if an error is a ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationErrors
	return errors.As(err, &validationErr)
}

// NewTeamNotFound creates a NotFoundError carrying the missing team id
func NewTeamNotFound(id uuid.UUID) error {
	return &NotFoundError{Entity: "Team", ID: id.String()}
}

// NewMemberNotFound creates a NotFoundError carrying the missing member id
func NewMemberNotFound(id uuid.UUID) error {
	return &NotFoundError{Entity: "Team member", ID: id.String()}
}

// NewProjectNotFound creates a NotFoundError carrying the missing project id
func NewProjectNotFound(id uuid.UUID) error {
	return &NotFoundError{Entity: "Project", ID: id.String()}
}

// NewTeamNameExists creates an AlreadyExistsError for a colliding team name
func NewTeamNameExists(name string) error {
	return &AlreadyExistsError{Entity: "Team", Field: "name", Value: name}
}

// NewMemberEmailExists creates an AlreadyExistsError for a colliding member email
func NewMemberEmailExists(email string) error {
	return &AlreadyExistsError{Entity: "Member", Field: "email", Value: email}
}

// NewProjectNameExists creates an AlreadyExistsError for a colliding project name
func NewProjectNameExists(name string) error {
	return &AlreadyExistsError{Entity: "Project", Field: "name", Value: name}
}

// NewValidationErrors creates a ValidationErrors from a field map
func NewValidationErrors(fields map[string]string) error {
	return &ValidationErrors{Fields: fields}
}
