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

// Package asm provides functions to assemble and disassemble Hack machine
// code, as defined in the nand2tetris course.
//
// Source format:
//
// One instruction per line. Comments start with "//" and run to the end of the
// line. White space is ignored anywhere, so that "D = D + 1 ; JGT" is the same
// as "D=D+1;JGT". Blank lines and comment lines do not generate code.
//
// A-instructions:
//
//	@value		load a decimal constant in [0, 65535] in A
//	@symbol		load the address of a label, variable or predefined symbol in A
//
// An operand with at least one letter in it is a symbol, anything else must be
// a decimal integer.
//
// C-instructions:
//
//	dest=comp;jump	dest and jump are optional: comp, dest=comp, comp;jump
//
//	comp (a=0)	comp (a=1)	bits
//	----------	----------	------
//	0				101010
//	1				111111
//	-1				111010
//	D				001100
//	A		M		110000
//	!D				001101
//	!A		!M		110001
//	-D				001111
//	-A		-M		110011
//	D+1				011111
//	A+1		M+1		110111
//	D-1				001110
//	A-1		M-1		110010
//	D+A		D+M		000010
//	D-A		D-M		010011
//	A-D		M-D		000111
//	D&A		D&M		000000
//	D|A		D|M		010101
//
// dest is any combination of the letters A, D and M, each one setting its own
// destination bit. An empty dest ("=D") or one with any other character
// ("X=D") is an error rather than an empty destination. jump is one of JGT,
// JEQ, JGE, JLT, JNE, JLE or JMP.
//
// Labels:
//
// A label is defined by a line of the form "(NAME)". It does not generate code
// and resolves to the address of the next instruction:
//
//	(LOOP)		// LOOP is the address of @i
//		@i
//		M=M+1
//		@LOOP
//		0;JMP
//
// Variables:
//
// Symbols that are neither labels nor predefined are variables. They get
// consecutive RAM addresses starting at 16, in order of first use.
//
// Predefined symbols:
//
//	SP LCL ARG THIS THAT	0 to 4
//	R0 to R15		0 to 15
//	SCREEN			16384
//	KBD			24576
//
// Labels cannot be named after a predefined symbol.
package asm
