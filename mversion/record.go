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

// Package mversion maintains the master version record of a build tree.
//
// The record is a small line oriented text file:
//
//	X.Y.Z        source version, set by hand
//	<major>      build major, bumped when the build minor wraps
//	<minor>      build minor, bumped on every build, wraps after 99
//	<revision>   revision, set by hand
//
// Each integer line may carry trailing text after a '.', blank or '#'.
// Only the build major and minor lines are ever rewritten; everything else in
// the file, comments included, is written back untouched.
package mversion

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxBuildMinor is the last build minor before it wraps into the build major.
const MaxBuildMinor = 99

const (
	fieldSource = iota
	fieldBuildMajor
	fieldBuildMinor
	fieldRevision
	numFields
)

var fieldNames = [numFields]string{"source version", "build major", "build minor", "revision"}

// SourceVersion is the hand maintained X.Y.Z version of the source tree.
type SourceVersion struct {
	Major int
	Minor int
	Patch int
}

// String returns the compact form used inside a build version, "1.2.3" is
// "123". A Record renders the digits as written in the file instead.
func (s SourceVersion) String() string {
	return fmt.Sprintf("%d%d%d", s.Major, s.Minor, s.Patch)
}

// Dotted returns the X.Y.Z form.
func (s SourceVersion) Dotted() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}

// Record is a parsed master version file. A Record is only produced by Parse
// or ParseBytes and is valid from then on.
type Record struct {
	Source     SourceVersion
	BuildMajor int
	BuildMinor int
	Revision   int

	// sourceTokens are the X, Y and Z of the source line as written, so
	// "01.02.03" renders as "010203".
	sourceTokens [3]string
	// rawLines holds the file as read, each line with its terminator.
	rawLines []string
	// fieldLine maps each field to its index in rawLines.
	fieldLine [numFields]int
}

// Version renders the full build version for project.
func (r Record) Version(project string) string {
	return Render(project, r)
}

// SourceDotted returns the source version as written in the file, X.Y.Z.
func (r Record) SourceDotted() string {
	if r.sourceTokens[0] == "" {
		return r.Source.Dotted()
	}
	return strings.Join(r.sourceTokens[:], ".")
}

func (r Record) sourceCompact() string {
	if r.sourceTokens[0] == "" {
		return r.Source.String()
	}
	return strings.Join(r.sourceTokens[:], "")
}

// Parse reads and validates the master version file at path.
func Parse(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	return ParseBytes(path, data)
}

// ParseBytes parses the contents of a master version file; name is only used
// in errors.
func ParseBytes(name string, data []byte) (*Record, error) {
	r := &Record{rawLines: splitLines(data)}

	field := fieldSource
	for i, raw := range r.rawLines {
		if field == numFields {
			break
		}
		l := strings.TrimSpace(raw)
		if l == "" {
			continue
		}
		lineno := i + 1
		r.fieldLine[field] = i

		if field == fieldSource {
			sv, tokens, err := parseSource(l)
			if err != nil {
				return nil, &ParseError{File: name, Line: lineno, Field: fieldNames[field], Err: err}
			}
			r.Source = sv
			r.sourceTokens = tokens
		} else {
			v, err := parseCounter(l)
			if err != nil {
				return nil, &ParseError{File: name, Line: lineno, Field: fieldNames[field], Err: err}
			}
			switch field {
			case fieldBuildMajor:
				r.BuildMajor = v
			case fieldBuildMinor:
				r.BuildMinor = v
			case fieldRevision:
				r.Revision = v
			}
		}
		field++
	}
	if field != numFields {
		return nil, &ParseError{
			File: name,
			Err:  fmt.Errorf("expected %d version lines, found %d", numFields, field),
		}
	}
	return r, nil
}

// Advance returns r with the build counter moved on by one build.
func Advance(r Record) Record {
	if r.BuildMinor >= MaxBuildMinor {
		r.BuildMinor = 0
		r.BuildMajor++
	} else {
		r.BuildMinor++
	}
	return r
}

// Render formats "<project>-<source>.<build major>.<build minor>.<revision>".
func Render(project string, r Record) string {
	return fmt.Sprintf("%s-%s.%d.%d.%d", project, r.sourceCompact(), r.BuildMajor, r.BuildMinor, r.Revision)
}

func splitLines(data []byte) []string {
	var lines []string
	for _, l := range bytes.SplitAfter(data, []byte("\n")) {
		if len(l) == 0 {
			continue
		}
		lines = append(lines, string(l))
	}
	return lines
}

func parseSource(l string) (SourceVersion, [3]string, error) {
	var tokens [3]string
	if i := strings.IndexAny(l, " \t#"); i != -1 {
		l = l[:i]
	}
	parts := strings.Split(l, ".")
	if len(parts) < 3 {
		return SourceVersion{}, tokens, fmt.Errorf("%q is not X.Y.Z", l)
	}
	var nums [3]int
	for i := range nums {
		n, err := parseNumber(parts[i])
		if err != nil {
			return SourceVersion{}, tokens, err
		}
		nums[i] = n
		tokens[i] = parts[i]
	}
	return SourceVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, tokens, nil
}

// parseCounter returns the leading integer of a counter line.
func parseCounter(l string) (int, error) {
	if i := strings.IndexAny(l, ". \t#"); i != -1 {
		l = l[:i]
	}
	return parseNumber(l)
}

func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing number")
	}
	if strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return strconv.Atoi(s)
}
