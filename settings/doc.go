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

/*
Package settings decodes user-authored error-prone configuration and applies it to an [errorprone.Registry].

# Usage

Settings arrive as loosely typed values, for example decoded from TOML:

	enabled = true
	disable-warnings-in-generated-code = true
	excluded-paths = "build/generated/"
	args = ["-XepPatchChecks:MissingOverride"]

	[checks]
	NullAway = "error"
	MissingSummary = "off"

	[options]
	"NullAway:AnnotatedPackages" = "com.example"
	"NullAway:TreatGeneratedAsUnannotated" = true

Decode them with [Decode] and apply the result:

	s, err := settings.Decode(raw)
	if err != nil {
		return err
	}

	r := errorprone.New()
	if err := s.Apply(r); err != nil {
		return err
	}

Map entries are applied in sorted key order, so rendering is deterministic.
*/
package settings
