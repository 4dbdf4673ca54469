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
	"sort"
	"strconv"
	"strings"
)

// Addresses of the memory mapped I/O devices.
const (
	ScreenAddress   = 16384
	KeyboardAddress = 24576
)

// VariableBase is the address of the first variable.
const VariableBase = 16

var predefined = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": ScreenAddress,
	"KBD":    KeyboardAddress,
}

func init() {
	for r := 0; r < 16; r++ {
		predefined["R"+strconv.Itoa(r)] = r
	}
}

// Symbol is a symbol table entry.
type Symbol struct {
	Name    string
	Address int
}

// SymbolTable maps symbol names to addresses. The zero value is not usable,
// use NewSymbolTable.
type SymbolTable struct {
	m map[string]int
}

// NewSymbolTable returns a new symbol table preloaded with the predefined
// Hack symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{m: make(map[string]int, len(predefined)+64)}
	for n, a := range predefined {
		st.m[n] = a
	}
	return st
}

// Lookup returns the address of the named symbol.
func (st *SymbolTable) Lookup(name string) (address int, ok bool) {
	address, ok = st.m[name]
	return
}

// Contains reports whether the named symbol is defined.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.m[name]
	return ok
}

// Define sets the address of the named symbol, replacing any previous
// definition.
func (st *SymbolTable) Define(name string, address int) {
	st.m[name] = address
}

// IsPredefined reports whether name is one of the architecture symbols.
func (st *SymbolTable) IsPredefined(name string) bool {
	_, ok := predefined[name]
	return ok
}

// Len returns the number of symbols in the table.
func (st *SymbolTable) Len() int { return len(st.m) }

// Entries returns all symbols sorted by address, then name.
func (st *SymbolTable) Entries() []Symbol {
	s := make([]Symbol, 0, len(st.m))
	for n, a := range st.m {
		s = append(s, Symbol{n, a})
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].Address != s[j].Address {
			return s[i].Address < s[j].Address
		}
		return s[i].Name < s[j].Name
	})
	return s
}

// String returns one "name address" pair per line, in Entries order.
func (st *SymbolTable) String() string {
	var b strings.Builder
	for _, s := range st.Entries() {
		b.WriteString(s.Name)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s.Address))
		b.WriteByte('\n')
	}
	return b.String()
}
