package main

import (
	"errors"
	"fmt"
)

// ErrMissingDependency is returned by a Rasterizer that cannot render SVG in
// this build.
var ErrMissingDependency = errors.New("SVG rasterizer not available in this build")

type ErrorKind int

const (
	GenericFailure ErrorKind = iota
	MissingInputFile
	MissingDependency
)

func (k ErrorKind) String() string {
	switch k {
	case MissingInputFile:
		return "missing input file"
	case MissingDependency:
		return "missing dependency"
	default:
		return "conversion failed"
	}
}

// ConversionError is the only error type returned by convert.
type ConversionError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case MissingInputFile:
		return fmt.Sprintf("%s not found!", e.Path)
	case MissingDependency:
		return ErrMissingDependency.Error()
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// classify wraps err into a ConversionError, keeping an existing one as is.
func classify(err error) *ConversionError {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce
	}
	if errors.Is(err, ErrMissingDependency) {
		return &ConversionError{Kind: MissingDependency, Err: err}
	}
	return &ConversionError{Kind: GenericFailure, Err: err}
}
