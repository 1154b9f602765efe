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

// Package errorprone renders typed error-prone configuration into compiler arguments.
//
// # Overview
//
// A [Registry] collects check severities, check options, global switches and raw
// arguments for one compilation unit. [Registry.Render] turns them into the flat
// argument list passed to javac:
//
//	r := errorprone.New(errorprone.WithDisableWarningsInGeneratedCode(true))
//	_ = r.SetChecks(errorprone.Check("NullAway", errorprone.SeverityError))
//	_ = r.SetOptions(errorprone.Opt("NullAway:AnnotatedPackages", "com.example"))
//	args := r.Render()
//
// yields
//
//	-XepDisableWarningsInGeneratedCode
//	-Xep:NullAway:ERROR
//	-XepOpt:NullAway:AnnotatedPackages=com.example
//
// # Semantics
//
//   - Later assignments to the same check or option name win; the position is that of the first assignment.
//   - A batch passed to [Registry.SetChecks] or [Registry.SetOptions] is applied entirely or not at all.
//   - [SeverityDefault] is rendered without a severity suffix.
//   - A disabled registry renders nothing but keeps its configuration.
package errorprone
