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

import "log/slog"

// Option configures a [Registry] created by [New].
type Option interface {
	apply(r *Registry)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *Registry) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithEnabled is an [Option] to configure whether the registry renders any arguments.
func WithEnabled(enabled bool) Option { return enabledOption{enabled: enabled} }

type enabledOption struct{ enabled bool }

func (o enabledOption) apply(r *Registry) {
	r.SetEnabled(o.enabled)
}

func (o enabledOption) LogAttr() slog.Attr {
	return slog.Bool("enabled", o.enabled)
}

// WithSwitch is an [Option] to set or clear a global flag.
func WithSwitch(s Switch, value bool) Option { return switchOption{s: s, value: value} }

type switchOption struct {
	s     Switch
	value bool
}

func (o switchOption) apply(r *Registry) {
	r.SetSwitch(o.s, o.value)
}

func (o switchOption) LogAttr() slog.Attr {
	return slog.Bool(o.s.Name(), o.value)
}

// WithDisableAllChecks is an [Option] to disable all checks not configured explicitly.
func WithDisableAllChecks(disable bool) Option {
	return WithSwitch(DisableAllChecks, disable)
}

// WithAllErrorsAsWarnings is an [Option] to downgrade errors to warnings.
func WithAllErrorsAsWarnings(warn bool) Option {
	return WithSwitch(AllErrorsAsWarnings, warn)
}

// WithAllDisabledChecksAsWarnings is an [Option] to enable disabled-by-default checks as warnings.
func WithAllDisabledChecksAsWarnings(warn bool) Option {
	return WithSwitch(AllDisabledChecksAsWarnings, warn)
}

// WithDisableWarningsInGeneratedCode is an [Option] to suppress warnings in generated code.
func WithDisableWarningsInGeneratedCode(disable bool) Option {
	return WithSwitch(DisableWarningsInGeneratedCode, disable)
}

// WithIgnoreUnknownCheckNames is an [Option] to ignore configuration of unknown checks.
func WithIgnoreUnknownCheckNames(ignore bool) Option {
	return WithSwitch(IgnoreUnknownCheckNames, ignore)
}

// WithCompilingTestOnlyCode is an [Option] to mark the sources as test-only code.
func WithCompilingTestOnlyCode(testOnly bool) Option {
	return WithSwitch(CompilingTestOnlyCode, testOnly)
}
