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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyos-dev/tinyversion/mversion"
)

func TestParseFlags(t *testing.T) {
	flags, err := parseFlags([]string{
		"-m", "config/MasterVersion",
		"--template", "config",
		"-o", "build/version.h",
		"-b", "DEBUG",
		"--project", "tboot",
		"-P", "ex1",
		"-v",
	})
	require.NoError(t, err)
	assert.Equal(t, Flags{
		Master:    "config/MasterVersion",
		Template:  "config",
		Output:    "build/version.h",
		BuildType: "DEBUG",
		Project:   "tboot",
		Platform:  "ex1",
		Verbose:   true,
	}, flags)
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultProject, flags.Project)
	assert.Empty(t, flags.Master)
	assert.False(t, flags.Verbose)
}

func TestParseFlagsAliases(t *testing.T) {
	flags, err := parseFlags([]string{"--outfile", "version.h", "--build_type", "RELEASE"})
	require.NoError(t, err)
	assert.Equal(t, "version.h", flags.Output)
	assert.Equal(t, "RELEASE", flags.BuildType)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"":                 "",
		"config/Master":    "config/Master",
		"~":                home,
		"~/src/Master":     home + "/src/Master",
		"/x/~/src":         home + "/src",
		"/path/to/~":       home,
		"/odd~name/Master": "/odd~name/Master",
	}
	for in, want := range tests {
		got, err := expandTilde(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestJobFromFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	job, err := jobFromFlags(Flags{
		Master:    "~/MasterVersion",
		Template:  "tmpl",
		Project:   "tinykern",
		BuildType: "RELEASE",
		Platform:  "ex1",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "MasterVersion"), job.MasterPath)
	assert.Equal(t, "tmpl", job.TemplatePath)
	assert.Empty(t, job.OutputPath)
	assert.Equal(t, "RELEASE", job.BuildType)
}

func TestToolVersion(t *testing.T) {
	assert.Equal(t, "tinyversion-010.0.1.0", toolVersion("0.1.0\n0\n1\n0\n"))
	assert.Equal(t, "0.1", toolVersion("0.1\n"))

	data, err := os.ReadFile("version.txt")
	require.NoError(t, err)
	assert.Equal(t, toolVersion(string(data)), Version)
}

func TestRun(t *testing.T) {
	const record = "1.2.3\n4\n99\n7\n"

	tests := []struct {
		name       string
		record     string
		args       func(master, tmpl, out string) []string
		wantStdout string
		wantRecord string
		wantHeader string
		check      func(t *testing.T, err error)
	}{
		{
			name:   "no master is a no-op",
			record: record,
			args: func(master, tmpl, out string) []string {
				return []string{"-t", tmpl, "-o", out, "-p", "demo"}
			},
			wantRecord: record,
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:   "truncated record",
			record: "1.2.3\n4\n",
			args: func(master, tmpl, out string) []string {
				return []string{"-m", master, "-t", tmpl, "-o", out, "-p", "demo"}
			},
			wantRecord: "1.2.3\n4\n",
			check: func(t *testing.T, err error) {
				var perr *mversion.ParseError
				require.True(t, errors.As(err, &perr), "got %v", err)
			},
		},
		{
			name:   "bump and emit header",
			record: record,
			args: func(master, tmpl, out string) []string {
				return []string{"-m", master, "-t", tmpl, "-o", out, "-p", "demo", "-b", "RELEASE", "-P", "ex1"}
			},
			wantStdout: "demo-123.5.0.7\n",
			wantRecord: "1.2.3\n5\n0\n7\n",
			wantHeader: "demo-123.5.0.7 RELEASE ex1\n",
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			master := filepath.Join(dir, "MasterVersion")
			tmpl := filepath.Join(dir, "version.h.tmpl")
			out := filepath.Join(dir, "version.h")
			require.NoError(t, os.WriteFile(master, []byte(tt.record), 0644))
			require.NoError(t, os.WriteFile(tmpl, []byte("{{.SOURCE_VERSION}} {{.BUILD_STYLE}} {{.BUILD_TARGET}}\n"), 0644))

			var stdout bytes.Buffer
			tt.check(t, run(tt.args(master, tmpl, out), &stdout))
			assert.Equal(t, tt.wantStdout, stdout.String())

			got, err := os.ReadFile(master)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRecord, string(got))

			header, err := os.ReadFile(out)
			if tt.wantHeader == "" {
				assert.True(t, os.IsNotExist(err), "header written")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantHeader, string(header))
			}
		})
	}
}

func TestRunUsage(t *testing.T) {
	var stdout bytes.Buffer

	err := run([]string{"--no-such-flag"}, &stdout)
	var uerr usageError
	assert.True(t, errors.As(err, &uerr))

	err = run([]string{"-h"}, &stdout)
	assert.ErrorIs(t, err, pflag.ErrHelp)

	stdout.Reset()
	require.NoError(t, run([]string{"--version"}, &stdout))
	assert.Equal(t, "Version "+Version+" ("+Sha+")\n", stdout.String())
}
