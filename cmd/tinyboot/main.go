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
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tinyos-dev/tinyversion/qemu"
	"golang.org/x/term"
)

func loadPlatforms(path string) (map[string]qemu.Platform, error) {
	table := qemu.Platforms()
	if path == "" {
		return table, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	extra, err := qemu.LoadPlatforms(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %d platforms from %s", len(extra), path)
	return qemu.Merge(table, extra), nil
}

func runQemu(ctx context.Context, args []string) error {
	sPath, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("cannot find %s in PATH: %w", args[0], err)
	}
	log.Debugf("%s found: %s", args[0], sPath)

	cmd := exec.CommandContext(ctx, sPath, args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if flags.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05.000",
	})

	table, err := loadPlatforms(flags.PlatformsFile)
	if err != nil {
		log.Fatal("platforms: ", err)
	}
	plat, err := qemu.LookupPlatform(table, flags.Platform)
	if err != nil {
		log.Fatal(err)
	}
	opts, err := flags.options()
	if err != nil {
		log.Fatal(err)
	}

	args := qemu.Command(plat, opts)
	if flags.DryRun {
		fmt.Println(qemu.CommandLine(plat, opts))
		return
	}

	writeBanner(os.Stdout, plat, opts, term.IsTerminal(int(os.Stdout.Fd())))
	fmt.Println("\n--- Starting Qemu ---")
	log.Debugf("running: %v", args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runQemu(ctx, args); err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}
