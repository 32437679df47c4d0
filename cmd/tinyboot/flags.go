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
	"fmt"

	"github.com/spf13/pflag"
	"github.com/tinyos-dev/tinyversion/qemu"
)

// Flags are the parsed tinyboot command line flags.
type Flags struct {
	Firmware      []string
	BIOS          string
	Tree          string
	Platform      string
	PlatformsFile string
	Trace         int
	DryRun        bool
	Verbose       bool
}

func parseFlags(args []string) (Flags, error) {
	var flags Flags
	fs := pflag.NewFlagSet("tinyboot", pflag.ContinueOnError)

	// StringArray, not StringSlice: each value is "path,addr" and must not be
	// split on the comma.
	fs.StringArrayVarP(&flags.Firmware, "firmware", "f", nil, "Firmware image and load address as path[,addr], may be repeated")
	fs.StringVarP(&flags.BIOS, "bios", "b", "", "BIOS image")
	fs.StringVarP(&flags.Tree, "tree", "t", "", "Device tree blob")
	fs.StringVar(&flags.Platform, "platform", qemu.PlatformEX1.ID, "Platform to emulate")
	fs.StringVar(&flags.PlatformsFile, "platforms", "", "YAML file with additional platforms")
	fs.IntVar(&flags.Trace, "trace", int(qemu.TraceInterrupts), "qemu trace level, 0-2")
	fs.BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the qemu command instead of running it")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log verbosely")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	if flags.Trace < int(qemu.TraceNone) || flags.Trace > int(qemu.TraceGuestErrors) {
		return Flags{}, fmt.Errorf("--trace must be between 0 and 2, got %d", flags.Trace)
	}
	return flags, nil
}

// options turns the flags into qemu options.
func (f Flags) options() (qemu.Options, error) {
	o := qemu.Options{
		BIOS:       f.BIOS,
		DeviceTree: f.Tree,
		Trace:      qemu.TraceLevel(f.Trace),
	}
	for i, arg := range f.Firmware {
		fw, err := qemu.ParseFirmware(arg, i)
		if err != nil {
			return qemu.Options{}, err
		}
		o.Firmware = append(o.Firmware, fw)
	}
	return o, nil
}
