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
	"strings"
)

// CheckSeverity determines how the compiler treats a named check.
type CheckSeverity uint8

//go:generate go tool stringer -type CheckSeverity -linecomment
const (
	// SeverityDefault keeps the check's built-in severity.
	SeverityDefault CheckSeverity = iota // DEFAULT
	// SeverityOff disables the check.
	SeverityOff // OFF
	// SeverityWarn reports findings of the check as warnings.
	SeverityWarn // WARN
	// SeverityError reports findings of the check as errors.
	SeverityError // ERROR
)

// Valid reports whether s is one of the defined severities.
func (s CheckSeverity) Valid() bool { return s <= SeverityError }

// suffix returns the flag suffix for s, empty for [SeverityDefault].
func (s CheckSeverity) suffix() string {
	if s == SeverityDefault {
		return ""
	}

	return ":" + s.String()
}

// ParseCheckSeverity returns the severity named by str, ignoring case.
func ParseCheckSeverity(str string) (CheckSeverity, error) {
	for s := SeverityDefault; s.Valid(); s++ {
		if strings.EqualFold(str, s.String()) {
			return s, nil
		}
	}

	return SeverityDefault, fmt.Errorf("unknown check severity %q: %w", str, ErrInvalidArgument)
}

// MarshalText implements [encoding.TextMarshaler].
func (s CheckSeverity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%s: %w", s, ErrInvalidArgument)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *CheckSeverity) UnmarshalText(text []byte) error {
	v, err := ParseCheckSeverity(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
