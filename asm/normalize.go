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
	"text/scanner"
	"unicode"
)

// LineKind classifies a normalized instruction.
type LineKind int

// Line kinds.
const (
	LabelDef LineKind = iota
	AInstruction
	CInstruction
)

// Line is a normalized instruction: no comments, no white space. Pos is the
// position of its first non-blank character in the source.
type Line struct {
	Text string
	Pos  scanner.Position
}

// Kind returns the classification of l.
func (l Line) Kind() LineKind {
	switch {
	case strings.HasPrefix(l.Text, "("):
		return LabelDef
	case strings.HasPrefix(l.Text, "@"):
		return AInstruction
	}
	return CInstruction
}

const commentMarker = "//"

// Normalize strips comments and white space from the given source lines and
// drops the ones left empty. The name parameter is used as file name in the
// position of the returned lines.
func Normalize(name string, lines []string) []Line {
	var out []Line
	for n, s := range lines {
		if i := strings.Index(s, commentMarker); i >= 0 {
			s = s[:i]
		}
		if i := strings.IndexAny(s, "\r\n"); i >= 0 {
			s = s[:i]
		}
		col := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if col < 0 {
			continue
		}
		out = append(out, Line{
			Text: strings.Map(dropSpace, s),
			Pos: scanner.Position{
				Filename: name,
				Line:     n + 1,
				Column:   len([]rune(s[:col])) + 1,
			},
		})
	}
	return out
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
