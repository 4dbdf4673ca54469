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

package main

import (
	"io"
	"os"

	"github.com/db47h/hackasm/asm"
	"github.com/k0kubun/pp/v3"
)

// dumpSymbols pretty prints the symbol table to w, with colors if w is a
// terminal.
func dumpSymbols(w io.Writer, st *asm.SymbolTable) {
	p := pp.New()
	p.SetOutput(w)
	f, ok := w.(*os.File)
	p.SetColoringEnabled(ok && isTerminal(f))
	p.Printf("%d symbols\n", st.Len())
	p.Println(st.Entries())
}
