package apigw

import (
	"errors"
	"fmt"
)

// SerializationError is returned by the builder when the request body cannot be
// encoded as JSON.
type SerializationError struct {
	Value any   // Body value that failed to encode
	Err   error // Underlying encoder error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize request body of type %T: %v", e.Value, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// IsSerializationError returns true if err is or wraps a SerializationError
func IsSerializationError(err error) bool {
	var serErr *SerializationError
	return errors.As(err, &serErr)
}

// OptionsError is returned when a loosely typed options map cannot be decoded
// into RequestOptions.
type OptionsError struct {
	Err error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid request options: %v", e.Err)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}
