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
	"bytes"
	"os"
	"path/filepath"
	"text/template"
)

// DefaultTemplateName is the template loaded when the template path is a
// directory.
const DefaultTemplateName = "version.h.tmpl"

// HeaderData carries the values a header template may reference as
// {{.SOURCE_VERSION}}, {{.SOURCE_DOTTED}}, {{.BUILD_STYLE}}, {{.BUILD_TARGET}}
// and {{.PROJECT}}.
type HeaderData struct {
	SourceVersion string
	SourceDotted  string
	BuildStyle    string
	BuildTarget   string
	Project       string
}

func (d HeaderData) placeholders() map[string]string {
	return map[string]string{
		"SOURCE_VERSION": d.SourceVersion,
		"SOURCE_DOTTED":  d.SourceDotted,
		"BUILD_STYLE":    d.BuildStyle,
		"BUILD_TARGET":   d.BuildTarget,
		"PROJECT":        d.Project,
	}
}

// EmitHeader renders the template at templatePath with data and writes the
// result to outputPath. Nothing is written unless the template renders.
func EmitHeader(outputPath, templatePath string, data HeaderData) error {
	name, err := resolveTemplate(templatePath)
	if err != nil {
		return &TemplateError{Template: templatePath, Err: err}
	}
	text, err := os.ReadFile(name)
	if err != nil {
		return &TemplateError{Template: name, Err: err}
	}
	tmpl, err := template.New(filepath.Base(name)).Option("missingkey=error").Parse(string(text))
	if err != nil {
		return &TemplateError{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data.placeholders()); err != nil {
		return &TemplateError{Template: name, Err: err}
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return &WriteError{File: outputPath, Err: err}
	}
	return nil
}

func resolveTemplate(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return filepath.Join(path, DefaultTemplateName), nil
	}
	return path, nil
}
