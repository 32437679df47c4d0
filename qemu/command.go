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

package qemu

import (
	"fmt"
	"strconv"
	"strings"
)

// Default load addresses. The BIOS image given with -bios sits at
// LoadAddrTinyROM.
const (
	LoadAddrTinyROM uint64 = 0x00000000
	LoadAddrTBoot   uint64 = 0x48000000
	LoadAddrKernel  uint64 = 0x48500000
)

// Binary is the emulator executable.
const Binary = "qemu-system-aarch64"

// TraceLevel selects how much qemu logs about the guest.
type TraceLevel int

const (
	TraceNone TraceLevel = iota
	TraceInterrupts
	TraceGuestErrors
)

// Firmware is an image loaded into guest memory by the generic loader device.
type Firmware struct {
	Path     string
	LoadAddr uint64
}

// Options are the per run settings on top of a Platform.
type Options struct {
	Firmware   []Firmware
	BIOS       string
	DeviceTree string
	Trace      TraceLevel
}

var defaultOptions = []string{
	"-machine", "secure=true,virtualization=on,gic-version=3",
	"-serial", "stdio",
}

// ParseFirmware parses "path[,addr]". Without an address, the first image
// loads at the bootloader address and the second at the kernel address.
func ParseFirmware(arg string, index int) (Firmware, error) {
	path, addr, hasAddr := strings.Cut(arg, ",")
	path = strings.TrimSpace(path)
	if path == "" {
		return Firmware{}, fmt.Errorf("firmware %q: no path", arg)
	}
	if !hasAddr {
		switch index {
		case 0:
			return Firmware{Path: path, LoadAddr: LoadAddrTBoot}, nil
		case 1:
			return Firmware{Path: path, LoadAddr: LoadAddrKernel}, nil
		}
		return Firmware{}, fmt.Errorf("firmware %q: no load address", arg)
	}
	a, err := strconv.ParseUint(strings.TrimSpace(addr), 0, 64)
	if err != nil {
		return Firmware{}, fmt.Errorf("firmware %q: bad load address: %w", arg, err)
	}
	return Firmware{Path: path, LoadAddr: a}, nil
}

// Command returns the argv, binary first, that boots o on p.
func Command(p Platform, o Options) []string {
	args := []string{
		Binary,
		"-M", "virt",
		"-cpu", p.Core,
		"-smp", strconv.Itoa(p.CPUs),
		"-m", fmt.Sprintf("%dM", p.MemoryMB),
	}
	args = append(args, defaultOptions...)

	switch o.Trace {
	case TraceNone:
	case TraceInterrupts:
		args = append(args, "-d", "int")
	default:
		args = append(args, "-d", "int,guest_errors")
	}
	// gdb stub on tcp::1234
	args = append(args, "-s")

	if o.BIOS != "" {
		args = append(args, "-bios", o.BIOS)
	}
	for _, fw := range o.Firmware {
		args = append(args, "-device", fmt.Sprintf("loader,file=%s,addr=%#x", fw.Path, fw.LoadAddr))
	}
	if o.DeviceTree != "" {
		args = append(args, "-dtb", o.DeviceTree)
	}
	return args
}

// CommandLine renders Command as a single line for display.
func CommandLine(p Platform, o Options) string {
	return strings.Join(Command(p, o), " ")
}
