package compat

import "errors"

// Matrix parse/validation errors.
var (
	// ErrConfidenceRange is returned when a confidence value falls
	// outside [0,1].
	ErrConfidenceRange = errors.New("confidence must be in [0,1]")

	// ErrNoTools is returned when a functional alternative declares an
	// empty tool list.
	ErrNoTools = errors.New("functional alternative needs at least one tool")

	// ErrNoSteps is returned when a composite alternative declares no
	// steps.
	ErrNoSteps = errors.New("composite alternative needs at least one step")

	// ErrUnknownStrategy is returned when a functional alternative names
	// a strategy other than sequential, parallel or choice.
	ErrUnknownStrategy = errors.New("unknown execution strategy")

	// ErrEmptyToolName is returned when an alternative references a tool
	// with an empty name.
	ErrEmptyToolName = errors.New("tool name cannot be empty")
)
