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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyos-dev/tinyversion/qemu"
)

func TestParseFlags(t *testing.T) {
	flags, err := parseFlags([]string{
		"-f", "build/tboot.bin,0x48000000",
		"--firmware", "build/tinykern.bin",
		"-b", "build/tinyrom.bin",
		"-t", "build/tiny-ex1.dtb",
		"--trace", "2",
		"-n",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"build/tboot.bin,0x48000000", "build/tinykern.bin"}, flags.Firmware)
	assert.Equal(t, "ex1", flags.Platform)
	assert.True(t, flags.DryRun)

	opts, err := flags.options()
	require.NoError(t, err)
	assert.Equal(t, qemu.Options{
		Firmware: []qemu.Firmware{
			{Path: "build/tboot.bin", LoadAddr: qemu.LoadAddrTBoot},
			{Path: "build/tinykern.bin", LoadAddr: qemu.LoadAddrKernel},
		},
		BIOS:       "build/tinyrom.bin",
		DeviceTree: "build/tiny-ex1.dtb",
		Trace:      qemu.TraceGuestErrors,
	}, opts)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"--trace", "3"})
	assert.Error(t, err)

	flags, err := parseFlags([]string{"-f", "tboot.bin,nope"})
	require.NoError(t, err)
	_, err = flags.options()
	assert.Error(t, err)
}

func TestLoadPlatforms(t *testing.T) {
	table, err := loadPlatforms("")
	require.NoError(t, err)
	assert.Contains(t, table, "ex1")

	p := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(p, []byte("platforms:\n  - {id: ex2, core: cortex-a53, cpus: 2, memory_mb: 256}\n"), 0644))
	table, err = loadPlatforms(p)
	require.NoError(t, err)
	assert.Contains(t, table, "ex1")
	assert.Equal(t, "cortex-a53", table["ex2"].Core)

	_, err = loadPlatforms(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	opts := qemu.Options{
		Firmware: []qemu.Firmware{{Path: "tboot.bin", LoadAddr: qemu.LoadAddrTBoot}},
		BIOS:     "tinyrom.bin",
	}
	writeBanner(&buf, qemu.PlatformEX1, opts, false)

	out := buf.String()
	assert.Contains(t, out, "TinyOS Developer Tools")
	assert.Contains(t, out, "tinyrom.bin @ 0x0")
	assert.Contains(t, out, "tboot.bin @ 0x48000000")
	assert.Contains(t, out, "4 x neoverse-n1")
}
