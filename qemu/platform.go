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

// Package qemu builds the qemu-system-aarch64 command line used to boot
// TinyOS images on an emulated platform.
package qemu

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Platform describes the emulated machine for one TinyOS platform.
type Platform struct {
	ID         string `yaml:"id"`
	DeviceTree string `yaml:"device_tree"`
	Core       string `yaml:"core"`
	Clusters   int    `yaml:"clusters"`
	CPUs       int    `yaml:"cpus"`
	MemoryMB   int    `yaml:"memory_mb"`
}

// Experimental test platform, 4 Neoverse-N1 cores.
var PlatformEX1 = Platform{
	ID:         "ex1",
	DeviceTree: "tiny-ex1.dtsi",
	Core:       "neoverse-n1",
	Clusters:   1,
	CPUs:       4,
	MemoryMB:   512,
}

// Platforms returns the built-in platform table keyed by ID.
func Platforms() map[string]Platform {
	return map[string]Platform{
		PlatformEX1.ID: PlatformEX1,
	}
}

// LookupPlatform finds id in table.
func LookupPlatform(table map[string]Platform, id string) (Platform, error) {
	p, ok := table[id]
	if !ok {
		ids := make([]string, 0, len(table))
		for k := range table {
			ids = append(ids, k)
		}
		sort.Strings(ids)
		return Platform{}, fmt.Errorf("unknown platform %q (have %v)", id, ids)
	}
	return p, nil
}

type platformFile struct {
	Platforms []Platform `yaml:"platforms"`
}

// LoadPlatforms reads a YAML platform table:
//
//	platforms:
//	  - id: ex2
//	    core: cortex-a72
//	    cpus: 8
//	    memory_mb: 1024
func LoadPlatforms(r io.Reader) (map[string]Platform, error) {
	var pf platformFile
	if err := yaml.NewDecoder(r).Decode(&pf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode platforms: %w", err)
	}

	table := make(map[string]Platform, len(pf.Platforms))
	for i, p := range pf.Platforms {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("platform %d: no id", i)
		case p.Core == "":
			return nil, fmt.Errorf("platform %s: no core", p.ID)
		case p.CPUs <= 0:
			return nil, fmt.Errorf("platform %s: cpus must be positive", p.ID)
		case p.MemoryMB <= 0:
			return nil, fmt.Errorf("platform %s: memory_mb must be positive", p.ID)
		}
		if _, ok := table[p.ID]; ok {
			return nil, fmt.Errorf("duplicate platform %s", p.ID)
		}
		table[p.ID] = p
	}
	return table, nil
}

// Merge returns base with extra's entries added, replacing any with the same
// ID.
func Merge(base, extra map[string]Platform) map[string]Platform {
	out := make(map[string]Platform, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
