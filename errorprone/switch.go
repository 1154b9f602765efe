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

import "fillmore-labs.com/epflags/internal/config"

// Switch is a boolean global error-prone flag.
type Switch = config.Switch

// Global flags, rendered in this order.
const (
	DisableAllChecks               = config.DisableAllChecks               // -XepDisableAllChecks
	AllErrorsAsWarnings            = config.AllErrorsAsWarnings            // -XepAllErrorsAsWarnings
	AllDisabledChecksAsWarnings    = config.AllDisabledChecksAsWarnings    // -XepAllDisabledChecksAsWarnings
	DisableWarningsInGeneratedCode = config.DisableWarningsInGeneratedCode // -XepDisableWarningsInGeneratedCode
	IgnoreUnknownCheckNames        = config.IgnoreUnknownCheckNames        // -XepIgnoreUnknownCheckNames
	CompilingTestOnlyCode          = config.CompilingTestOnlyCode          // -XepCompilingTestOnlyCode
)
