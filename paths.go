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
package main

import (
	"os"
	"strings"
)

// expandTilde replaces a leading "~" (or a "/~/" component) with the home
// directory of the current user.
func expandTilde(path string) (string, error) {
	if !strings.Contains(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if i := strings.Index(path, "/~/"); i != -1 {
		return strings.Join([]string{home, path[i+3:]}, "/"), nil
	} else if ok := strings.HasPrefix(path, "~/"); ok {
		return strings.Join([]string{home, path[2:]}, "/"), nil
	} else if ok := strings.HasSuffix(path, "/~"); ok {
		return home, nil
	} else if path == "~" {
		return home, nil
	}
	return path, nil
}

// expandPaths applies expandTilde to each non-empty path in place.
func expandPaths(paths ...*string) error {
	for _, p := range paths {
		if *p == "" {
			continue
		}
		v, err := expandTilde(*p)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}
