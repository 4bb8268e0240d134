package instance

import (
	"errors"
	"fmt"
)

var (
	//ErrArgumentCountMismatch is returned when fewer arguments than required parameters are supplied
	ErrArgumentCountMismatch = errors.New("incorrect number of arguments")
	//ErrArgumentMismatch is returned when no supplied argument satisfies a required parameter
	ErrArgumentMismatch = errors.New("arguments do not match with expected parameters")
	//ErrNotInstantiable is returned for interface or otherwise non constructible types
	ErrNotInstantiable = errors.New("type is not instantiable")
	//ErrTypeNotFound is returned when no constructor nor type is registered under a name
	ErrTypeNotFound = errors.New("type not found")
)

// ArgumentMismatchError names the parameter that could not be satisfied
type ArgumentMismatchError struct {
	Type      string
	Parameter *Parameter
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("%v: %v: parameter %v", e.Type, ErrArgumentMismatch, e.Parameter)
}

func (e *ArgumentMismatchError) Is(target error) bool {
	return target == ErrArgumentMismatch
}

// InstantiationError wraps constructor failure
type InstantiationError struct {
	Type string
	Err  error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate %v: %v", e.Type, e.Err)
}

func (e *InstantiationError) Unwrap() error {
	return e.Err
}
