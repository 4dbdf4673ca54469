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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/hackasm/internal/hackio"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type config struct {
	strict bool
	st     *SymbolTable
}

// Option configures the assembler.
type Option func(*config)

// Strict makes label redefinitions fatal. The default is false: the last
// definition wins and a warning is logged.
func Strict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// Symbols makes Assemble use the given symbol table instead of a fresh one, so
// that it can be inspected after assembly. st should come from NewSymbolTable.
func Symbols(st *SymbolTable) Option {
	return func(c *config) { c.st = st }
}

func newConfig(opts []Option) *config {
	c := new(config)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assemble compiles the assembly read from the supplied io.Reader and returns
// the resulting machine words and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// Assembly stops at the first error. Errors relating to a source line have an
// *Error cause, see IsKind.
func Assemble(name string, r io.Reader, opts ...Option) ([]Word, error) {
	c := newConfig(opts)
	st := c.st
	if st == nil {
		st = NewSymbolTable()
	}

	// no line length limit. Normalize drops the line terminators.
	var src []string
	br := bufio.NewReader(r)
	for {
		l, err := br.ReadString('\n')
		if l != "" {
			src = append(src, l)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(&Error{Kind: SourceUnavailable, Msg: err.Error()}, name)
		}
	}
	glog.V(1).Infof("%s: %d lines", name, len(src))

	lines, err := ResolveLabels(Normalize(name, src), st, opts...)
	if err != nil {
		return nil, err
	}
	return Encode(lines, st)
}

// WriteHack writes words to w in the Hack text format: one binary word per
// line, no header.
func WriteHack(w io.Writer, words []Word) error {
	ew, _ := w.(*hackio.ErrWriter)
	if ew == nil {
		ew = hackio.NewErrWriter(w)
	}
	for _, v := range words {
		io.WriteString(ew, v.String())
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

var (
	destNames = [8]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}
	jumpNames [8]string
	compNames = make(map[Word]string, len(compTable))
)

func init() {
	for m, j := range jumpTable {
		jumpNames[j] = m
	}
	for m, c := range compTable {
		if strings.Contains(m, "M") {
			c |= aBit >> compShift
		}
		compNames[c] = m
	}
}

// Disassemble returns the assembly text for the given machine word, or "???"
// if w is not a valid instruction.
func Disassemble(w Word) string {
	if w.IsA() {
		return "@" + strconv.Itoa(int(w))
	}
	if w&cPrefix != cPrefix {
		return "???"
	}
	comp, ok := compNames[(w>>compShift)&0x7f]
	if !ok {
		return "???"
	}
	s := comp
	if d := destNames[(w>>destShift)&7]; d != "" {
		s = d + "=" + s
	}
	if j := jumpNames[w&7]; j != "" {
		s += ";" + j
	}
	return s
}

// DisassembleAll writes a disassembly of all words in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first word (words[0]). It will return any write error.
func DisassembleAll(words []Word, base int, w io.Writer) error {
	ew := hackio.NewErrWriter(w)
	for pc, v := range words {
		fmt.Fprintf(ew, "% 6d\t%v\t%s\n", base+pc, v, Disassemble(v))
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
