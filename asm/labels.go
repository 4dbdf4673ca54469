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
	"strings"

	"github.com/golang/glog"
)

// ResolveLabels is the first assembler pass. It records the address of every
// label definition in st and returns the remaining instructions. A label
// resolves to the address of the instruction that follows it.
//
// Redefining a label replaces its previous address and logs a warning, unless
// the Strict option is set, in which case it is an error.
func ResolveLabels(lines []Line, st *SymbolTable, opts ...Option) ([]Line, error) {
	c := newConfig(opts)
	out := make([]Line, 0, len(lines))
	defs := make(map[string]Line)
	for _, l := range lines {
		if l.Kind() != LabelDef {
			out = append(out, l)
			continue
		}
		if !strings.HasSuffix(l.Text, ")") {
			return nil, lineError(MalformedLabel, l, "missing closing parenthesis")
		}
		name := l.Text[1 : len(l.Text)-1]
		if name == "" {
			return nil, lineError(MalformedLabel, l, "empty label name")
		}
		if strings.ContainsAny(name, "()") {
			return nil, lineError(MalformedLabel, l, "unexpected parenthesis in label name")
		}
		if st.IsPredefined(name) {
			return nil, lineError(PredefinedRedefinition, l, "")
		}
		if prev, ok := defs[name]; ok {
			if c.strict {
				return nil, lineError(LabelRedefinition, l, "previous definition here: %s", prev.Pos)
			}
			glog.Warningf("%s: label %s redefined, previous definition here: %s", l.Pos, name, prev.Pos)
		}
		defs[name] = l
		st.Define(name, len(out))
	}
	glog.V(1).Infof("%d labels, %d instructions", len(defs), len(out))
	return out, nil
}
