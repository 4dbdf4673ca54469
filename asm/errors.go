// This file is part of hackasm - https://github.com/db47h/hackasm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"text/scanner"

	"github.com/pkg/errors"
)

// Kind identifies the class of an assembly failure.
type Kind int

// Error kinds. All of them are fatal.
const (
	_ Kind = iota
	MissingArgument
	SourceUnavailable
	UnrecognizedComputation
	UnrecognizedJump
	UnrecognizedDestination
	MalformedAddress
	AddressOutOfRange
	MalformedLabel
	PredefinedRedefinition
	LabelRedefinition
)

var kindNames = [...]string{
	MissingArgument:         "missing argument",
	SourceUnavailable:       "source unavailable",
	UnrecognizedComputation: "unrecognized computation",
	UnrecognizedJump:        "unrecognized jump",
	UnrecognizedDestination: "unrecognized destination",
	MalformedAddress:        "malformed address reference",
	AddressOutOfRange:       "address out of range",
	MalformedLabel:          "malformed label",
	PredefinedRedefinition:  "redefinition of predefined symbol",
	LabelRedefinition:       "label redefinition",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is the error type returned by the assembler. Pos is not valid for
// errors that do not relate to a specific source line.
type Error struct {
	Kind Kind
	Pos  scanner.Position
	Text string // offending instruction text, if any
	Msg  string // optional detail
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Pos.IsValid() {
		s = e.Pos.String() + ": " + s
	}
	if e.Text != "" {
		s += fmt.Sprintf(" %q", e.Text)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// NewError returns a new error of the given kind that is not tied to a source
// position. The returned error carries a stack trace.
func NewError(kind Kind, msg string) error {
	return errors.WithStack(&Error{Kind: kind, Msg: msg})
}

func lineError(kind Kind, l Line, format string, args ...interface{}) error {
	e := &Error{Kind: kind, Pos: l.Pos, Text: l.Text}
	if format != "" {
		e.Msg = fmt.Sprintf(format, args...)
	}
	return errors.WithStack(e)
}

// IsKind reports whether the cause of err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := errors.Cause(err).(*Error)
	return ok && e.Kind == kind
}
