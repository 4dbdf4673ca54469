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
	"strings"
	"testing"

	"github.com/db47h/hackasm/asm"
	"github.com/pkg/errors"
)

func normalize(code string) []asm.Line {
	return asm.Normalize("test", strings.Split(code, "\n"))
}

func TestResolveLabels(t *testing.T) {
	code := `(START)
	// comments and blank lines do not count

	@i
	(FIRST)
	(ALIAS)
	M=0
	@START
	0;JMP
(END)`
	st := asm.NewSymbolTable()
	lines, err := asm.ResolveLabels(normalize(code), st)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	if s := strings.Join(texts, " "); s != "@i M=0 @START 0;JMP" {
		t.Fatalf("Unexpected instructions: %s", s)
	}
	for n, a := range map[string]int{"START": 0, "FIRST": 1, "ALIAS": 1, "END": 4} {
		if got, ok := st.Lookup(n); !ok || got != a {
			t.Errorf("%s: expected %d, got %d (defined: %v)", n, a, got, ok)
		}
	}
	if st.Contains("i") {
		t.Error("variables must not be allocated by the first pass")
	}
}

func TestResolveLabels_redefinition(t *testing.T) {
	code := "(L)\n@1\n(L)\n@2"
	st := asm.NewSymbolTable()
	if _, err := asm.ResolveLabels(normalize(code), st); err != nil {
		t.Fatal(err)
	}
	if a, _ := st.Lookup("L"); a != 1 {
		t.Fatalf("Expected last definition to win, got %d", a)
	}

	_, err := asm.ResolveLabels(normalize(code), asm.NewSymbolTable(), asm.Strict(true))
	if !asm.IsKind(err, asm.LabelRedefinition) {
		t.Fatalf("Expected label redefinition error, got %v", err)
	}
	if e := errors.Cause(err).(*asm.Error); e.Pos.Line != 3 || e.Text != "(L)" {
		t.Errorf("Error points to %s %q", e.Pos, e.Text)
	}
}

func TestResolveLabels_errors(t *testing.T) {
	tests := []struct {
		code string
		kind asm.Kind
	}{
		{"(LOOP", asm.MalformedLabel},
		{"()", asm.MalformedLabel},
		{"((X))", asm.MalformedLabel},
		{"(SP)", asm.PredefinedRedefinition},
		{"(R15)", asm.PredefinedRedefinition},
		{"(SCREEN)", asm.PredefinedRedefinition},
	}
	for _, test := range tests {
		_, err := asm.ResolveLabels(normalize("@0\n"+test.code), asm.NewSymbolTable())
		if !asm.IsKind(err, test.kind) {
			t.Errorf("%s: expected %v error, got %v", test.code, test.kind, err)
			continue
		}
		if e := errors.Cause(err).(*asm.Error); e.Pos.Line != 2 {
			t.Errorf("%s: error reported at line %d", test.code, e.Pos.Line)
		}
	}
}
