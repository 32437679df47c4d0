//
// -*- coding: utf-8 -*-
//
// Copyright (c) 2026, The TinyOS Authors
// All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package mversion

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

var errNotParsed = errors.New("record was not read from a version file")

// Bytes returns the file contents for r: the lines read by Parse with the
// build major and build minor lines replaced by their current values.
func (r *Record) Bytes() ([]byte, error) {
	if len(r.rawLines) == 0 {
		return nil, errNotParsed
	}
	lines := make([]string, len(r.rawLines))
	copy(lines, r.rawLines)
	lines[r.fieldLine[fieldBuildMajor]] = replaceLine(lines[r.fieldLine[fieldBuildMajor]], r.BuildMajor)
	lines[r.fieldLine[fieldBuildMinor]] = replaceLine(lines[r.fieldLine[fieldBuildMinor]], r.BuildMinor)
	return []byte(strings.Join(lines, "")), nil
}

// Persist writes r back to path. The file is rewritten in place, so a failed
// write can leave it truncated.
func Persist(path string, r *Record) error {
	data, err := r.Bytes()
	if err != nil {
		return &WriteError{File: path, Err: err}
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return &WriteError{File: path, Err: err}
	}
	return nil
}

// replaceLine swaps the content of line for v and keeps its terminator.
func replaceLine(line string, v int) string {
	var eol string
	switch {
	case strings.HasSuffix(line, "\r\n"):
		eol = "\r\n"
	case strings.HasSuffix(line, "\n"):
		eol = "\n"
	}
	return strconv.Itoa(v) + eol
}
