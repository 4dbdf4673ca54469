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
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/glog"
)

// Word is a Hack machine instruction.
type Word uint16

// String returns the 16 digits binary representation of w, most significant
// bit first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// IsA reports whether w is an A-instruction.
func (w Word) IsA() bool { return w&0x8000 == 0 }

// C-instruction layout: 111a cccc ccdd djjj
const (
	cPrefix    Word = 7 << 13
	aBit       Word = 1 << 12
	compShift       = 6
	destShift       = 3
	maxAddress      = 1<<16 - 1
)

// computation mnemonics. A and M forms share the same bits, the a bit selects
// the operand.
var compTable = map[string]Word{
	"0":   0b101010,
	"1":   0b111111,
	"-1":  0b111010,
	"D":   0b001100,
	"A":   0b110000,
	"M":   0b110000,
	"!D":  0b001101,
	"!A":  0b110001,
	"!M":  0b110001,
	"-D":  0b001111,
	"-A":  0b110011,
	"-M":  0b110011,
	"D+1": 0b011111,
	"A+1": 0b110111,
	"M+1": 0b110111,
	"D-1": 0b001110,
	"A-1": 0b110010,
	"M-1": 0b110010,
	"D+A": 0b000010,
	"D+M": 0b000010,
	"D-A": 0b010011,
	"D-M": 0b010011,
	"A-D": 0b000111,
	"M-D": 0b000111,
	"D&A": 0b000000,
	"D&M": 0b000000,
	"D|A": 0b010101,
	"D|M": 0b010101,
}

var jumpTable = map[string]Word{
	"JGT": 1,
	"JEQ": 2,
	"JGE": 3,
	"JLT": 4,
	"JNE": 5,
	"JLE": 6,
	"JMP": 7,
}

const (
	destA Word = 4
	destD Word = 2
	destM Word = 1
)

// Encode is the second assembler pass. It translates instructions into
// machine words, allocating variables in st as they are first referenced.
// The lines must not contain label definitions.
func Encode(lines []Line, st *SymbolTable) ([]Word, error) {
	e := encoder{st: st, next: VariableBase}
	words := make([]Word, 0, len(lines))
	for _, l := range lines {
		var (
			w   Word
			err error
		)
		switch l.Kind() {
		case AInstruction:
			w, err = e.encodeA(l)
		case CInstruction:
			w, err = encodeC(l)
		default:
			return nil, lineError(MalformedLabel, l, "unresolved label definition")
		}
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	glog.V(1).Infof("%d words, %d variables", len(words), e.next-VariableBase)
	return words, nil
}

type encoder struct {
	st   *SymbolTable
	next int
}

func isSymbol(ref string) bool {
	return strings.IndexFunc(ref, unicode.IsLetter) >= 0
}

func (e *encoder) encodeA(l Line) (Word, error) {
	ref := l.Text[1:]
	if isSymbol(ref) {
		if !e.st.Contains(ref) {
			if e.next >= ScreenAddress {
				glog.Warningf("%s: variable %s allocated at %d, overlapping memory mapped I/O", l.Pos, ref, e.next)
			}
			glog.V(2).Infof("%s: variable %s at %d", l.Pos, ref, e.next)
			e.st.Define(ref, e.next)
			e.next++
		}
		a, _ := e.st.Lookup(ref)
		if a < 0 || a > maxAddress {
			return 0, lineError(AddressOutOfRange, l, "symbol %s resolves to %d", ref, a)
		}
		return Word(a), nil
	}
	if ref == "" {
		return 0, lineError(MalformedAddress, l, "missing operand")
	}
	v, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, lineError(AddressOutOfRange, l, "")
		}
		return 0, lineError(MalformedAddress, l, "not a decimal integer")
	}
	if v > maxAddress {
		return 0, lineError(AddressOutOfRange, l, "%d does not fit in 16 bits", v)
	}
	return Word(v), nil
}

func encodeC(l Line) (Word, error) {
	dest, rest, hasDest := strings.Cut(l.Text, "=")
	if !hasDest {
		dest, rest = "", l.Text
	}
	comp, jump, hasJump := strings.Cut(rest, ";")

	w := cPrefix
	c, ok := compTable[comp]
	if !ok {
		return 0, lineError(UnrecognizedComputation, l, "%q", comp)
	}
	if strings.Contains(comp, "M") {
		w |= aBit
	}
	w |= c << compShift

	if hasDest {
		if dest == "" {
			return 0, lineError(UnrecognizedDestination, l, "empty destination")
		}
		var d Word
		for _, r := range dest {
			switch r {
			case 'A':
				d |= destA
			case 'D':
				d |= destD
			case 'M':
				d |= destM
			default:
				return 0, lineError(UnrecognizedDestination, l, "%q", dest)
			}
		}
		w |= d << destShift
	}

	if hasJump {
		j, ok := jumpTable[jump]
		if !ok {
			return 0, lineError(UnrecognizedJump, l, "%q", jump)
		}
		w |= j
	}
	return w, nil
}
