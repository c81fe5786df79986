package httperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// The scheduling core reports failures in four kinds. Anything that is
// not one of these is treated as unexpected and rendered opaquely.

// ValidationError: malformed or semantically invalid input. Carries a
// field -> message map. Never retried.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func ErrValidation(fields map[string]string) error {
	return ValidationError{Fields: fields}
}

func ErrValidationField(field, message string) error {
	return ValidationError{Fields: map[string]string{field: message}}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError: the referenced entity is absent or soft-deleted.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func ErrNotFound(entity string, id uint) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ConflictError: a race-condition-shaped failure (capacity taken by a
// concurrent writer, overlap detected at commit time). The booking
// engine retries these internally.
type ConflictError struct {
	Code string
}

func (e ConflictError) Error() string {
	return e.Code
}

func ErrConflict(code string) error {
	return ConflictError{Code: code}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// BusinessError: a structurally valid request that violates a domain
// rule. Never retried.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsAnyBusiness(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}
