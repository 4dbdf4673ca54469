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

package asm_test

import (
	"strconv"
	"testing"

	"github.com/db47h/hackasm/asm"
	"github.com/pkg/errors"
)

func encode(t *testing.T, st *asm.SymbolTable, code ...string) []asm.Word {
	t.Helper()
	lines := make([]asm.Line, len(code))
	for i, c := range code {
		lines[i] = asm.Line{Text: c}
	}
	w, err := asm.Encode(lines, st)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestEncode(t *testing.T) {
	tests := []struct {
		code string
		bin  string
	}{
		{"@SP", "0000000000000000"},
		{"@THAT", "0000000000000100"},
		{"@R13", "0000000000001101"},
		{"@SCREEN", "0100000000000000"},
		{"@KBD", "0110000000000000"},
		{"@2", "0000000000000010"},
		{"@0", "0000000000000000"},
		{"@007", "0000000000000111"},
		{"@32767", "0111111111111111"},
		{"@65535", "1111111111111111"},
		{"D=D+1;JGT", "1110011111010001"},
		{"M=1", "1110111111001000"},
		{"D=M", "1111110000010000"},
		{"D=D-M", "1111010011010000"},
		{"D;JGT", "1110001100000001"},
		{"0;JMP", "1110101010000111"},
		{"M=D", "1110001100001000"},
		{"AMD=M-1", "1111110010111000"},
		{"MD=M+1", "1111110111011000"},
		{"DM=M+1", "1111110111011000"},
		{"A=-1", "1110111010100000"},
		{"D|M;JNE", "1111010101000101"},
		{"D&A;JLE", "1110000000000110"},
		{"!D;JEQ", "1110001101000010"},
		{"-A;JGE", "1110110011000011"},
		{"A-D;JLT", "1110000111000100"},
	}
	for _, test := range tests {
		w := encode(t, asm.NewSymbolTable(), test.code)
		if s := w[0].String(); s != test.bin {
			t.Errorf("%s: expected %s, got %s", test.code, test.bin, s)
		}
	}
}

func TestEncode_roundTrip(t *testing.T) {
	w := encode(t, asm.NewSymbolTable(), "@2")
	n, err := strconv.ParseUint(w[0].String(), 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("Expected 2, got %d", n)
	}
}

func TestEncode_variables(t *testing.T) {
	st := asm.NewSymbolTable()
	st.Define("LOOP", 4)
	w := encode(t, st, "@i", "@j", "@i", "@LOOP", "@R1", "@k", "@j")
	exp := []asm.Word{16, 17, 16, 4, 1, 18, 17}
	for i := range exp {
		if w[i] != exp[i] {
			t.Errorf("word %d: expected %d, got %d", i, exp[i], w[i])
		}
	}
	for n, a := range map[string]int{"i": 16, "j": 17, "k": 18, "LOOP": 4} {
		if got, _ := st.Lookup(n); got != a {
			t.Errorf("%s: expected %d, got %d", n, a, got)
		}
	}
}

// variables keep being allocated past the start of the memory mapped I/O.
func TestEncode_variablesOverflowIO(t *testing.T) {
	n := asm.ScreenAddress - asm.VariableBase + 2
	code := make([]string, n)
	for i := range code {
		code[i] = "@v" + strconv.Itoa(i)
	}
	w := encode(t, asm.NewSymbolTable(), code...)
	if w[n-3] != asm.ScreenAddress-1 || w[n-2] != asm.ScreenAddress || w[n-1] != asm.ScreenAddress+1 {
		t.Fatalf("Unexpected addresses at the I/O boundary: %d %d %d", w[n-3], w[n-2], w[n-1])
	}
}

func TestEncode_errors(t *testing.T) {
	tests := []struct {
		code string
		kind asm.Kind
	}{
		{"@", asm.MalformedAddress},
		{"@-1", asm.MalformedAddress},
		{"@+1", asm.MalformedAddress},
		{"@1.5", asm.MalformedAddress},
		{"@65536", asm.AddressOutOfRange},
		{"@123456789012345678901234567890", asm.AddressOutOfRange},
		{"D=X", asm.UnrecognizedComputation},
		{"D=A+D", asm.UnrecognizedComputation},
		{"D=M=1", asm.UnrecognizedComputation},
		{"", asm.UnrecognizedComputation},
		{"0;JJJ", asm.UnrecognizedJump},
		{"0;", asm.UnrecognizedJump},
		{"0;jmp", asm.UnrecognizedJump},
		{"=D", asm.UnrecognizedDestination},
		{"X=D", asm.UnrecognizedDestination},
		{"(LOOP)", asm.MalformedLabel},
	}
	for _, test := range tests {
		_, err := asm.Encode([]asm.Line{{Text: "@0"}, {Text: test.code}}, asm.NewSymbolTable())
		if !asm.IsKind(err, test.kind) {
			t.Errorf("%q: expected %v error, got %v", test.code, test.kind, err)
			continue
		}
		if e := errors.Cause(err).(*asm.Error); e.Text != test.code {
			t.Errorf("%q: error points to %q", test.code, e.Text)
		}
	}
}
