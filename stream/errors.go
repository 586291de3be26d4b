package stream

import "errors"

// Sentinel errors for stream and operator misuse.
var (
	// ErrNegativeTimestamp indicates a negative timestamp was passed to Get.
	ErrNegativeTimestamp = errors.New("stream: timestamp cannot be negative")

	// ErrNotInitialized indicates an operator was stepped or read before its
	// required input/output bindings were established.
	ErrNotInitialized = errors.New("stream: operator bindings not initialized")

	// ErrNoOutputGroup indicates an output group was neither supplied at bind
	// time nor derivable from the input stream's group.
	ErrNoOutputGroup = errors.New("stream: output group not supplied and not derivable from input")
)
