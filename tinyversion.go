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
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tinyos-dev/tinyversion/mversion"
)

var (
	// Version : current version
	Version string = toolVersion(version)
	Sha     string = strings.TrimSpace(sha)
	//go:embed version.txt
	version string
	//go:embed .build-sha.txt
	sha string
)

// toolVersion renders our own master version record, falling back to its
// first line if it does not parse.
func toolVersion(data string) string {
	rec, err := mversion.ParseBytes("version.txt", []byte(data))
	if err != nil {
		return strings.SplitN(strings.TrimSpace(data), "\n", 2)[0]
	}
	return rec.Version("tinyversion")
}

func setupLogging(flags Flags) {
	if flags.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flags.Debug {
		log.SetLevel(log.TraceLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05.000",
	})
}

func jobFromFlags(flags Flags) (mversion.Job, error) {
	j := mversion.Job{
		MasterPath:   flags.Master,
		TemplatePath: flags.Template,
		OutputPath:   flags.Output,
		Project:      flags.Project,
		BuildType:    flags.BuildType,
		Platform:     flags.Platform,
	}
	if err := expandPaths(&j.MasterPath, &j.TemplatePath, &j.OutputPath); err != nil {
		return mversion.Job{}, fmt.Errorf("expand paths: %w", err)
	}
	return j, nil
}

// usageError marks a bad command line.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// run is tinyversion without the exit handling: it returns pflag.ErrHelp for
// -h, a usageError for bad flags, or the first pipeline error.
func run(args []string, stdout io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return usageError{err}
	}

	if flags.Version {
		fmt.Fprintf(stdout, "Version %s (%s)\n", Version, Sha)
		return nil
	}

	setupLogging(flags)

	// Without a master version file there is nothing to do. This is
	// deliberately not an error so build scripts may pass an empty -m.
	if flags.Master == "" {
		log.Debugf("no master version file given, nothing to do")
		return nil
	}

	job, err := jobFromFlags(flags)
	if err != nil {
		return err
	}
	log.Debugf("job: %+v", job)

	res, err := mversion.NewManager(log.StandardLogger()).Run(job)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Version)
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	var uerr usageError
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
		os.Exit(0)
	case errors.As(err, &uerr):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}
