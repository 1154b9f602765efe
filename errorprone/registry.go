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
	"regexp"
	"strings"
	"unicode"

	"fillmore-labs.com/epflags/internal/config"
)

// Registry accumulates error-prone configuration for one compilation unit
// and renders it to compiler arguments.
//
// The zero value is an enabled, empty registry. A Registry must not be mutated
// concurrently; [Registry.Render] may be called from any number of readers
// as long as no mutator runs at the same time.
type Registry struct {
	// disabled turns rendering off without discarding state.
	disabled bool

	// switches holds the global boolean flags.
	switches config.Switches

	// excludedPaths is a regular expression of source paths to skip, empty when unset.
	excludedPaths string

	checks  entries[CheckSeverity]
	options entries[string]

	// args are raw arguments in append order.
	args []string

	providers []ArgumentProvider
}

// New creates an enabled [Registry] with the given [Option]s applied.
func New(opts ...Option) *Registry {
	r := &Registry{}
	Options(opts).apply(r)

	return r
}

// Apply applies opts to r.
func (r *Registry) Apply(opts ...Option) {
	Options(opts).apply(r)
}

// Enabled reports whether [Registry.Render] produces arguments.
func (r *Registry) Enabled() bool { return !r.disabled }

// SetEnabled toggles rendering. Accumulated configuration is kept while disabled.
func (r *Registry) SetEnabled(enabled bool) { r.disabled = !enabled }

// Switch reports whether the global flag s is set.
func (r *Registry) Switch(s Switch) bool { return r.switches.Enabled(s) }

// SetSwitch sets or clears the global flag s.
func (r *Registry) SetSwitch(s Switch, value bool) { r.switches.Set(s, value) }

// ExcludedPaths returns the excluded paths expression, empty when unset.
func (r *Registry) ExcludedPaths() string { return r.excludedPaths }

// SetExcludedPaths sets a regular expression matching source paths error-prone should skip.
// An empty expression clears the setting.
func (r *Registry) SetExcludedPaths(expr string) error {
	if strings.IndexFunc(expr, unicode.IsSpace) >= 0 {
		return fmt.Errorf("excluded paths %q contain white space: %w", expr, ErrInvalidArgument)
	}

	if _, err := regexp.Compile(expr); err != nil {
		return fmt.Errorf("excluded paths %q: %w: %w", expr, ErrInvalidArgument, err)
	}

	r.excludedPaths = expr

	return nil
}

// SetChecks assigns severities to checks. Later assignments for the same name override earlier ones.
// If any entry is invalid, none is applied and an [*InvalidNameError] is returned.
func (r *Registry) SetChecks(checks ...CheckEntry) error {
	for _, c := range checks {
		if err := c.validate(); err != nil {
			return err
		}
	}

	for _, c := range checks {
		r.checks.put(c.Name, c.Severity)
	}

	return nil
}

// EnableChecks sets the named checks to [SeverityDefault].
func (r *Registry) EnableChecks(names ...string) error {
	checks := make([]CheckEntry, 0, len(names))
	for _, name := range names {
		checks = append(checks, Check(name, SeverityDefault))
	}

	return r.SetChecks(checks...)
}

// SetOptions assigns values to check options, with the same override and
// validation rules as [Registry.SetChecks]. Values may be empty.
func (r *Registry) SetOptions(options ...OptionEntry) error {
	for _, o := range options {
		if err := o.validate(); err != nil {
			return err
		}
	}

	for _, o := range options {
		r.options.put(o.Name, o.Value)
	}

	return nil
}

// EnableOptions sets the named options to "true".
func (r *Registry) EnableOptions(names ...string) error {
	options := make([]OptionEntry, 0, len(names))
	for _, name := range names {
		options = append(options, Opt(name, "true"))
	}

	return r.SetOptions(options...)
}

// AddRawArguments appends args verbatim to the rendered arguments.
// A nil slice is rejected with [ErrInvalidArgument].
func (r *Registry) AddRawArguments(args []string) error {
	if args == nil {
		return fmt.Errorf("raw arguments: %w", ErrInvalidArgument)
	}

	r.args = append(r.args, args...)

	return nil
}

// AddArgumentProviders appends providers consulted on each [Registry.Render].
func (r *Registry) AddArgumentProviders(providers ...ArgumentProvider) error {
	for i, p := range providers {
		if f, ok := p.(ArgumentProviderFunc); p == nil || ok && f == nil {
			return fmt.Errorf("argument provider #%d is nil: %w", i, ErrInvalidArgument)
		}
	}

	r.providers = append(r.providers, providers...)

	return nil
}

// Render returns the compiler arguments for the current configuration.
//
// The result is empty when the registry is disabled. Otherwise it lists global switches,
// excluded paths, checks and options in first-assignment order, raw arguments in
// append order, and finally the output of argument providers.
// Render does not modify r.
func (r *Registry) Render() []string {
	if r.disabled {
		return []string{}
	}

	args := make([]string, 0, r.size())

	if !r.switches.Empty() {
		for s := range config.All() {
			if r.switches.Enabled(s) {
				args = append(args, s.Flag())
			}
		}
	}

	if r.excludedPaths != "" {
		args = append(args, "-XepExcludedPaths:"+r.excludedPaths)
	}

	for name, severity := range r.checks.all() {
		args = append(args, Check(name, severity).Flag())
	}

	for name, value := range r.options.all() {
		args = append(args, Opt(name, value).Flag())
	}

	args = append(args, r.args...)

	for _, p := range r.providers {
		args = append(args, p.Arguments()...)
	}

	return args
}

func (r *Registry) size() int {
	return 7 + r.checks.len() + r.options.len() + len(r.args)
}

// LogValue implements [slog.LogValuer].
func (r *Registry) LogValue() slog.Value {
	switches := []string{}
	if !r.switches.Empty() {
		for s := range config.All() {
			if r.switches.Enabled(s) {
				switches = append(switches, s.Name())
			}
		}
	}

	checks := make([]slog.Attr, 0, r.checks.len())
	for name, severity := range r.checks.all() {
		checks = append(checks, Check(name, severity).LogAttr())
	}

	options := make([]slog.Attr, 0, r.options.len())
	for name, value := range r.options.all() {
		options = append(options, Opt(name, value).LogAttr())
	}

	return slog.GroupValue(
		slog.Bool("enabled", !r.disabled),
		slog.Any("switches", switches),
		slog.String("excludedPaths", r.excludedPaths),
		slog.Attr{Key: "checks", Value: slog.GroupValue(checks...)},
		slog.Attr{Key: "options", Value: slog.GroupValue(options...)},
		slog.Any("args", r.args),
		slog.Int("providers", len(r.providers)),
	)
}
