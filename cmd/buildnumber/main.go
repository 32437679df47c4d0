//
// -*- coding: utf-8 -*-
//
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tinyos-dev/tinyversion/mversion"
)

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("buildnumber", pflag.ContinueOnError)
	file := fs.StringP("file", "f", "version.txt", "Master version file to bump")
	project := fs.StringP("project", "p", "tinyversion", "Project name used as the version prefix")
	verbose := fs.BoolP("verbose", "v", false, "Log verbosely")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Load the record, move the build counter on by one and write it back.
	// Only the build major and minor lines change.
	res, err := mversion.NewManager(log.StandardLogger()).Bump(*file, *project)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Version)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "buildnumber: %v\n", err)
		os.Exit(1)
	}
}
