/*
Copyright 2026 The Redux Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package redux implements an adaptive order-0 arithmetic coder for byte
// streams.
//
// The implementations of the interfaces declared here live in sub-packages:
// bitio for bit-level I/O, model for the cumulative-frequency tables, codec
// for the arithmetic coding state machine, and stream for the compress/
// decompress facade that wires all three together.
package redux

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the three error conditions the coder can raise.
type Kind int

const (
	// KindEof means an input stream ended where more data was required.
	KindEof Kind = iota
	// KindInvalidInput means a precondition was violated by the caller or
	// by a corrupt bitstream.
	KindInvalidInput
	// KindIoError means a lower-level byte stream failed.
	KindIoError
)

func (k Kind) String() string {
	switch k {
	case KindEof:
		return "Eof"
	case KindInvalidInput:
		return "InvalidInput"
	case KindIoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is the error type returned throughout this module. Two IoError
// values compare equal under Is regardless of their wrapped cause; this
// loose equality exists for tests only, the wrapped cause is otherwise
// reachable with errors.Cause.
type Error struct {
	kind  Kind
	cause error
}

// Eof reports an input stream that ended mid-symbol-decode or during
// priming.
var Eof = &Error{kind: KindEof}

// InvalidInput reports a caller precondition or corrupt bitstream.
var InvalidInput = &Error{kind: KindInvalidInput}

// NewIoError wraps a lower-level byte stream failure.
func NewIoError(cause error) *Error {
	return &Error{kind: KindIoError, cause: errors.Wrap(cause, "redux: I/O error")}
}

// Kind returns which of the three error conditions this error represents.
func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Error() string {
	switch e.kind {
	case KindEof:
		return "redux: unexpected end of stream"
	case KindInvalidInput:
		return "redux: invalid data found while processing input"
	case KindIoError:
		return fmt.Sprintf("redux: %v", e.cause)
	default:
		return "redux: unknown error"
	}
}

// Cause returns the wrapped lower-level error, or nil if there is none.
func (e *Error) Cause() error {
	return errors.Cause(e.cause)
}

// Is makes two Error values of the same Kind compare equal regardless of
// their wrapped cause, satisfying the "loose IoError equality" the test
// suite relies on.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == other.kind
}
