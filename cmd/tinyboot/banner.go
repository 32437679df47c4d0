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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tinyos-dev/tinyversion/qemu"
)

func firmwareCell(o qemu.Options, i int) string {
	if i >= len(o.Firmware) {
		return "-"
	}
	return fmt.Sprintf("%s @ %#x", o.Firmware[i].Path, o.Firmware[i].LoadAddr)
}

func romCell(o qemu.Options) string {
	if o.BIOS == "" {
		return "-"
	}
	return fmt.Sprintf("%s @ %#x", o.BIOS, qemu.LoadAddrTinyROM)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// writeBanner prints what is about to be booted.
func writeBanner(w io.Writer, p qemu.Platform, o qemu.Options, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("TinyOS Developer Tools")
	t.AppendRow(table.Row{"Platform", fmt.Sprintf("%s (%d x %s, %dM)", p.ID, p.CPUs, p.Core, p.MemoryMB)})
	t.AppendRow(table.Row{"ROM", romCell(o)})
	t.AppendRow(table.Row{"Bootloader", firmwareCell(o, 0)})
	t.AppendRow(table.Row{"Kernel", firmwareCell(o, 1)})
	for i := 2; i < len(o.Firmware); i++ {
		t.AppendRow(table.Row{"Image", firmwareCell(o, i)})
	}
	t.AppendRow(table.Row{"DeviceTree", orDash(o.DeviceTree)})

	if color {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleRounded)
	}
	t.Render()
}
