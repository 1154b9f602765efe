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

package settings

import (
	"maps"
	"slices"

	"github.com/golangci/plugin-module-register/register"

	"fillmore-labs.com/epflags/errorprone"
)

// Decode converts raw settings, typically a map[string]any, into [Settings].
// Unknown keys and unknown severities are errors.
func Decode(rawSettings any) (Settings, error) {
	return register.DecodeSettings[Settings](rawSettings)
}

// Settings represents the error-prone configuration of one compilation unit.
type Settings struct {
	// Enabled turns argument rendering on or off.
	Enabled *bool `json:"enabled,omitzero"`
	// DisableAllChecks disables all checks not configured explicitly.
	DisableAllChecks *bool `json:"disable-all-checks,omitzero"`
	// AllErrorsAsWarnings downgrades errors to warnings.
	AllErrorsAsWarnings *bool `json:"all-errors-as-warnings,omitzero"`
	// AllDisabledChecksAsWarnings enables disabled-by-default checks as warnings.
	AllDisabledChecksAsWarnings *bool `json:"all-disabled-checks-as-warnings,omitzero"`
	// DisableWarningsInGeneratedCode suppresses warnings in generated code.
	DisableWarningsInGeneratedCode *bool `json:"disable-warnings-in-generated-code,omitzero"`
	// IgnoreUnknownCheckNames ignores configuration of unknown checks.
	IgnoreUnknownCheckNames *bool `json:"ignore-unknown-check-names,omitzero"`
	// CompilingTestOnlyCode marks the sources as test-only code.
	CompilingTestOnlyCode *bool `json:"compiling-test-only-code,omitzero"`
	// ExcludedPaths is a regular expression of source paths to skip.
	ExcludedPaths *string `json:"excluded-paths,omitzero"`
	// Checks maps check names to severities.
	Checks map[string]errorprone.CheckSeverity `json:"checks,omitzero"`
	// Options maps check option names to values.
	Options map[string]Scalar `json:"options,omitzero"`
	// Args are raw compiler arguments.
	Args []string `json:"args,omitzero"`
}

// RegistryOptions converts [Settings] into a list of [errorprone.Option].
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) RegistryOptions() []errorprone.Option {
	var opts []errorprone.Option

	opts = appendOption(opts, s.Enabled, errorprone.WithEnabled)
	opts = appendOption(opts, s.DisableAllChecks, errorprone.WithDisableAllChecks)
	opts = appendOption(opts, s.AllErrorsAsWarnings, errorprone.WithAllErrorsAsWarnings)
	opts = appendOption(opts, s.AllDisabledChecksAsWarnings, errorprone.WithAllDisabledChecksAsWarnings)
	opts = appendOption(opts, s.DisableWarningsInGeneratedCode, errorprone.WithDisableWarningsInGeneratedCode)
	opts = appendOption(opts, s.IgnoreUnknownCheckNames, errorprone.WithIgnoreUnknownCheckNames)
	opts = appendOption(opts, s.CompilingTestOnlyCode, errorprone.WithCompilingTestOnlyCode)

	return opts
}

// Apply applies s to r. Checks and options are each applied as one batch,
// so an invalid name leaves the respective mapping of r untouched.
func (s Settings) Apply(r *errorprone.Registry) error {
	r.Apply(s.RegistryOptions()...)

	if s.ExcludedPaths != nil {
		if err := r.SetExcludedPaths(*s.ExcludedPaths); err != nil {
			return err
		}
	}

	checks := make([]errorprone.CheckEntry, 0, len(s.Checks))
	for _, name := range slices.Sorted(maps.Keys(s.Checks)) {
		checks = append(checks, errorprone.Check(name, s.Checks[name]))
	}

	if err := r.SetChecks(checks...); err != nil {
		return err
	}

	options := make([]errorprone.OptionEntry, 0, len(s.Options))
	for _, name := range slices.Sorted(maps.Keys(s.Options)) {
		options = append(options, errorprone.Opt(name, string(s.Options[name])))
	}

	if err := r.SetOptions(options...); err != nil {
		return err
	}

	if s.Args != nil {
		return r.AddRawArguments(s.Args)
	}

	return nil
}

// appendOption appends a non-nil setting to a [errorprone.Option] list.
func appendOption[T any](opts []errorprone.Option, value *T, constructor func(T) errorprone.Option) []errorprone.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
