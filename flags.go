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
	"strings"

	"github.com/spf13/pflag"
	"github.com/tinyos-dev/tinyversion/mversion"
)

// DefaultProject names the build when -p is not given.
const DefaultProject = "tinykern"

// Flags are the parsed tinyversion command line flags.
type Flags struct {
	Master    string
	Template  string
	Output    string
	BuildType string
	Project   string
	Platform  string
	Verbose   bool
	Debug     bool
	Version   bool
}

// flagAliases maps older flag spellings onto their current names.
var flagAliases = map[string]string{
	"outfile": "output",
}

func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if n, ok := flagAliases[name]; ok {
		name = n
	}
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newFlagSet(flags *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tinyversion", pflag.ContinueOnError)
	fs.SetNormalizeFunc(normalizeFlag)

	fs.StringVarP(&flags.Master, "master", "m", "", "MasterVersion file holding the version numbers")
	fs.StringVarP(&flags.Template, "template", "t", "", "Header template file, or a directory holding "+mversion.DefaultTemplateName)
	fs.StringVarP(&flags.Output, "output", "o", "", "Header file to write")
	fs.StringVarP(&flags.BuildType, "build-type", "b", "", "Build style: RELEASE, DEBUG or INTERNAL")
	fs.StringVarP(&flags.Project, "project", "p", DefaultProject, "Project name used as the version prefix")
	fs.StringVarP(&flags.Platform, "platform", "P", "", "Build target platform")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log verbosely")
	fs.BoolVar(&flags.Debug, "debug", false, "Log information useful for debugging")
	fs.BoolVar(&flags.Version, "version", false, "Print the version and exit")
	return fs
}

// parseFlags parses the command line arguments, without the program name.
func parseFlags(args []string) (Flags, error) {
	var flags Flags
	fs := newFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return flags, nil
}
