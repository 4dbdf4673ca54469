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

package hackio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Ext is the extension of machine code files.
const Ext = ".hack"

// OutputName returns the name of the machine code file for the given source
// file: same directory, base name up to its first dot and the Ext extension.
func OutputName(src string) string {
	dir, base := filepath.Split(src)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return dir + base + Ext
}

// WriteFile calls write with a buffered writer to a temporary file in the
// directory of fileName, then renames it to fileName. On error, the temporary
// file is removed and fileName is left untouched.
func WriteFile(fileName string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(fileName)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	w := bufio.NewWriter(f)
	if err = write(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return errors.Wrap(err, "write failed")
	}
	if err = f.Sync(); err != nil {
		return errors.Wrap(err, "sync failed")
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "close failed")
	}
	if err = os.Chmod(tmp, 0644); err != nil {
		return errors.Wrap(err, "chmod failed")
	}
	return errors.Wrap(os.Rename(tmp, fileName), "rename failed")
}
