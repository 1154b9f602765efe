// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package errorprone

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// CheckEntry assigns a severity to a named check.
type CheckEntry struct {
	Name     string
	Severity CheckSeverity
}

// Check returns a [CheckEntry] for name with severity.
func Check(name string, severity CheckSeverity) CheckEntry {
	return CheckEntry{Name: name, Severity: severity}
}

func (c CheckEntry) validate() error {
	if err := validateName("check", c.Name, ':'); err != nil {
		return err
	}

	if !c.Severity.Valid() {
		return &InvalidNameError{Kind: "check", Name: c.Name, Reason: "unknown severity " + c.Severity.String()}
	}

	return nil
}

// Flag returns the compiler argument for c.
func (c CheckEntry) Flag() string {
	return "-Xep:" + c.Name + c.Severity.suffix()
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (c CheckEntry) LogAttr() slog.Attr {
	return slog.String(c.Name, c.Severity.String())
}

// OptionEntry assigns a value to a named check option.
type OptionEntry struct {
	Name  string
	Value string
}

// Opt returns an [OptionEntry] for name with value.
func Opt(name, value string) OptionEntry {
	return OptionEntry{Name: name, Value: value}
}

func (o OptionEntry) validate() error {
	return validateName("option", o.Name, '=')
}

// Flag returns the compiler argument for o.
func (o OptionEntry) Flag() string {
	return "-XepOpt:" + o.Name + "=" + o.Value
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o OptionEntry) LogAttr() slog.Attr {
	return slog.String(o.Name, o.Value)
}

// validateName rejects empty names, names with white space and names containing sep.
func validateName(kind, name string, sep rune) error {
	switch {
	case name == "":
		return &InvalidNameError{Kind: kind, Name: name, Reason: "empty name"}

	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return &InvalidNameError{Kind: kind, Name: name, Reason: "contains white space"}

	case strings.ContainsRune(name, sep):
		return &InvalidNameError{Kind: kind, Name: name, Reason: fmt.Sprintf("contains %q", sep)}
	}

	return nil
}
