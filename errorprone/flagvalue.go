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
	"flag"
	"iter"
	"strconv"
	"strings"

	"fillmore-labs.com/epflags/internal/config"
)

// Value is a [flag.Value] that also satisfies the pflag Value interface.
type Value interface {
	flag.Value
	Type() string
}

// NewCheckValue returns a repeatable flag value parsing NAME[:SEVERITY] into a check of r.
func NewCheckValue(r *Registry) Value { return checkValue{r: r} }

type checkValue struct{ r *Registry }

// Set implements [flag.Value].
func (v checkValue) Set(s string) error {
	name, sev, found := strings.Cut(s, ":")

	severity := SeverityDefault
	if found {
		var err error
		if severity, err = ParseCheckSeverity(sev); err != nil {
			return err
		}
	}

	return v.r.SetChecks(Check(name, severity))
}

// String implements [flag.Value].
func (v checkValue) String() string {
	if v.r == nil {
		return ""
	}

	var b strings.Builder
	for name, severity := range v.r.checks.all() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(name)
		b.WriteString(severity.suffix())
	}

	return b.String()
}

// Type returns the value type name shown in usage messages.
func (checkValue) Type() string { return "check" }

// NewOptionValue returns a repeatable flag value parsing NAME[=VALUE] into an option of r.
// A missing value means "true".
func NewOptionValue(r *Registry) Value { return optionValue{r: r} }

type optionValue struct{ r *Registry }

// Set implements [flag.Value].
func (v optionValue) Set(s string) error {
	name, value, found := strings.Cut(s, "=")
	if !found {
		value = "true"
	}

	return v.r.SetOptions(Opt(name, value))
}

// String implements [flag.Value].
func (v optionValue) String() string {
	if v.r == nil {
		return ""
	}

	var b strings.Builder
	for name, value := range v.r.options.all() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}

	return b.String()
}

// Type returns the value type name shown in usage messages.
func (optionValue) Type() string { return "option" }

// Switches yields every global flag in rendering order.
func Switches() iter.Seq[Switch] { return config.All() }

// NewSwitchValue returns a boolean flag value setting or clearing the global flag s of r.
func NewSwitchValue(r *Registry, s Switch) Value {
	var flags *config.Switches
	if r != nil {
		flags = &r.switches
	}

	return boolValue[Switch, *config.Switches]{flags: flags, value: s}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// Type returns the value type name shown in usage messages.
func (f boolValue[_, _]) Type() string { return "bool" }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
