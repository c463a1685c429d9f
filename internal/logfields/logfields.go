// Package logfields defines the logging field names used across packages.
package logfields

const (
	// Type is the Go type a shape decodes into.
	Type = "type"

	// Union is the interface type a union decodes into.
	Union = "union"

	// Variant is the union member being attempted.
	Variant = "variant"

	// Offset is a byte offset into the input.
	Offset = "offset"

	// Text is the span of input being decoded.
	Text = "text"

	// Shape is a runtime shape declaration.
	Shape = "shape"

	// Input is the name of an input file.
	Input = "input"
)
