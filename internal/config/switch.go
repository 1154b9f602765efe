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

package config

import (
	"iter"
	"strings"
)

// Switch represents a boolean global error-prone flag.
type Switch uint8

const (
	// DisableAllChecks disables all checks except those explicitly configured.
	DisableAllChecks Switch = 1 << iota

	// AllErrorsAsWarnings downgrades every error-level check to a warning.
	AllErrorsAsWarnings

	// AllDisabledChecksAsWarnings enables every disabled-by-default check as a warning.
	AllDisabledChecksAsWarnings

	// DisableWarningsInGeneratedCode suppresses warnings in generated sources.
	DisableWarningsInGeneratedCode

	// IgnoreUnknownCheckNames makes configuration of unknown checks a no-op.
	IgnoreUnknownCheckNames

	// CompilingTestOnlyCode marks the compilation unit as test-only code.
	CompilingTestOnlyCode

	lastSwitch = CompilingTestOnlyCode
)

// Switches is the set of enabled global flags.
type Switches = BitMask[Switch]

// Flag returns the compiler argument for s, or "" when s is not a single known switch.
func (s Switch) Flag() string {
	switch s {
	case DisableAllChecks:
		return "-XepDisableAllChecks"
	case AllErrorsAsWarnings:
		return "-XepAllErrorsAsWarnings"
	case AllDisabledChecksAsWarnings:
		return "-XepAllDisabledChecksAsWarnings"
	case DisableWarningsInGeneratedCode:
		return "-XepDisableWarningsInGeneratedCode"
	case IgnoreUnknownCheckNames:
		return "-XepIgnoreUnknownCheckNames"
	case CompilingTestOnlyCode:
		return "-XepCompilingTestOnlyCode"
	default:
		return ""
	}
}

// Name returns the switch name without the flag prefix, or "" when s is not a single known switch.
func (s Switch) Name() string {
	return strings.TrimPrefix(s.Flag(), "-Xep")
}

// All yields every known switch in rendering order.
func All() iter.Seq[Switch] {
	return func(yield func(Switch) bool) {
		for s := Switch(1); s != 0 && s <= lastSwitch; s <<= 1 {
			if !yield(s) {
				return
			}
		}
	}
}
