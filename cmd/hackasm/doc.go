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

// The hackasm command line tool assembles Hack assembly source files into Hack
// machine code, using the package github.com/db47h/hackasm/asm.
//
// Usage:
//
//	hackasm [flags] source
//
//	-o, --output filename
//		  write machine code to filename
//	--strict
//		  make label redefinitions fatal
//	--dump
//		  print a disassembly listing to stdout
//	--debug
//		  enable debug diagnostics
//	-v level
//		  log verbosity (glog)
//
// With no flags, the machine code for "dir/prog.asm" is written to
// "dir/prog.hack". The output file is only replaced once assembly has
// succeeded.
//
// --debug: print full stack traces of errors and dump the symbol table to
// stderr.
//
// --dump: print the address, binary word and disassembly of every instruction
// to stdout:
//
//	     0	0000000000000010	@2
//	     1	1110110000010000	D=A
//
// --strict: by default a label defined twice resolves to its last definition
// and a warning is logged. This flag turns it into an error.
//
// The exit status is 0 on success and 1 on any error.
package main
