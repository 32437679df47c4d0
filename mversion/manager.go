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

package mversion

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Job names the files and labels for one version bump.
type Job struct {
	MasterPath   string
	TemplatePath string
	OutputPath   string
	Project      string
	BuildType    string
	Platform     string
}

// Result is what a successful Run produced.
type Result struct {
	Record  Record
	Version string
}

// Manager runs the version pipeline: parse, advance, render, persist and
// emit the header. Each step runs once and the first error stops the run.
type Manager struct {
	log logrus.FieldLogger
}

// NewManager returns a Manager logging to log. A nil log discards all output.
func NewManager(log logrus.FieldLogger) *Manager {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Manager{log: log}
}

// Bump advances the record at path by one build and writes it back.
func (m *Manager) Bump(path, project string) (Result, error) {
	log := m.log.WithField("file", path)

	log.Debugf("parsing master version")
	rec, err := Parse(path)
	if err != nil {
		return Result{}, err
	}
	log.Debugf("current build %d.%d revision %d", rec.BuildMajor, rec.BuildMinor, rec.Revision)

	*rec = Advance(*rec)
	version := rec.Version(project)
	log.WithField("version", version).Debugf("advanced build")

	if err := Persist(path, rec); err != nil {
		return Result{}, err
	}
	log.Debugf("master version written")
	return Result{Record: *rec, Version: version}, nil
}

// Run bumps the master record of j and emits its header. The record is
// written before the header, so a header failure leaves the record advanced.
// An empty OutputPath skips the header.
func (m *Manager) Run(j Job) (Result, error) {
	res, err := m.Bump(j.MasterPath, j.Project)
	if err != nil {
		return Result{}, err
	}
	if j.OutputPath == "" {
		m.log.Debugf("no header output given, skipping")
		return res, nil
	}

	data := HeaderData{
		SourceVersion: res.Version,
		SourceDotted:  res.Record.SourceDotted(),
		BuildStyle:    j.BuildType,
		BuildTarget:   j.Platform,
		Project:       j.Project,
	}
	if err := EmitHeader(j.OutputPath, j.TemplatePath, data); err != nil {
		return res, err
	}
	m.log.WithFields(logrus.Fields{
		"file":     j.OutputPath,
		"template": j.TemplatePath,
	}).Infof("wrote header for %s", res.Version)
	return res, nil
}
