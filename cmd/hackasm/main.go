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
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/internal/hackio"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	output string
	strict bool
	dump   bool
	debug  bool
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *options) {
	o := new(options)
	cmd := &cobra.Command{
		Use:   "hackasm [flags] source",
		Short: "Assemble Hack assembly into Hack machine code",
		Long: `hackasm translates a Hack assembly source file into a .hack file holding
one 16 digits binary word per instruction.

The output file is written next to the source with the same base name, up to
its first dot, and the .hack extension.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return asm.NewError(asm.MissingArgument, "no source file")
			case 1:
				return nil
			}
			return errors.Errorf("expected one source file, got %d", len(args))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return assemble(args[0], o, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "write machine code to `filename`")
	f.BoolVar(&o.strict, "strict", false, "make label redefinitions fatal")
	f.BoolVar(&o.dump, "dump", false, "print a disassembly listing to stdout")
	f.BoolVar(&o.debug, "debug", false, "enable debug diagnostics")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	return cmd, o
}

func assemble(src string, o *options, stdout, stderr io.Writer) error {
	out := o.output
	if out == "" {
		out = hackio.OutputName(src)
	}
	if filepath.Clean(out) == filepath.Clean(src) {
		return errors.Errorf("%s: output would overwrite source", src)
	}

	f, err := os.Open(src)
	if err != nil {
		return asm.NewError(asm.SourceUnavailable, err.Error())
	}
	defer f.Close()

	st := asm.NewSymbolTable()
	words, err := asm.Assemble(src, f, asm.Strict(o.strict), asm.Symbols(st))
	if o.debug {
		dumpSymbols(stderr, st)
	}
	if err != nil {
		return err
	}

	err = hackio.WriteFile(out, func(w io.Writer) error {
		return asm.WriteHack(w, words)
	})
	if err != nil {
		return errors.Wrap(err, out)
	}
	glog.V(1).Infof("wrote %d words to %s", len(words), out)

	if o.dump {
		return asm.DisassembleAll(words, 0, stdout)
	}
	return nil
}

func atExit(err error, debug bool) {
	glog.Flush()
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "hackasm: %+v\n", err)
	os.Exit(1)
}

func main() {
	// log to stderr unless told otherwise
	flag.Set("logtostderr", "true")

	cmd, o := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.Execute()
	atExit(err, o.debug)
}
