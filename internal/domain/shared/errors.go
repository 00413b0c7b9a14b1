package shared

import "fmt"

// RetrievalError reports a network or HTTP-level failure while talking to
// the upstream data provider. It aborts the category being fetched, not
// the whole batch.
type RetrievalError struct {
	Resource string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for %s: %v", e.Resource, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func NewRetrievalError(resource string, err error) *RetrievalError {
	return &RetrievalError{Resource: resource, Err: err}
}

// DecodeError reports an upstream payload that is not valid JSON or does
// not have the expected top-level shape.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(resource string, err error) *DecodeError {
	return &DecodeError{Resource: resource, Err: err}
}

// NotFoundError reports a category/version combination that does not
// exist upstream.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// MalformedRecordError reports a single raw record missing a structurally
// required field. Only the offending record is skipped; the rest of the
// category continues.
type MalformedRecordError struct {
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: missing required field %q", e.Field)
}

func NewMalformedRecordError(field string) *MalformedRecordError {
	return &MalformedRecordError{Field: field}
}

// ConstraintError reports a persistence rejection for a reason other than
// uniqueness, e.g. a foreign key referencing an entity that was never
// materialized. It signals an ordering bug or inconsistent source data.
type ConstraintError struct {
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation on %s: %v", e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

func NewConstraintError(table string, err error) *ConstraintError {
	return &ConstraintError{Table: table, Err: err}
}
