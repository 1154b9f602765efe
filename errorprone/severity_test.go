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

package errorprone_test

import (
	"encoding/json"
	"errors"
	"testing"

	. "fillmore-labs.com/epflags/errorprone"
)

func TestParseCheckSeverity(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		in      string
		want    CheckSeverity
		wantErr bool
	}{
		{"DEFAULT", SeverityDefault, false},
		{"off", SeverityOff, false},
		{"Warn", SeverityWarn, false},
		{"ERROR", SeverityError, false},
		{"fatal", SeverityDefault, true},
		{"", SeverityDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCheckSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCheckSeverity(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected %v to match %v", err, ErrInvalidArgument)
			}

			if got != tt.want {
				t.Errorf("ParseCheckSeverity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeverityJSON(t *testing.T) {
	t.Parallel()

	var checks map[string]CheckSeverity
	if err := json.Unmarshal([]byte(`{"A":"warn","B":"OFF"}`), &checks); err != nil {
		t.Fatalf("Can't decode severities: %v", err)
	}

	if checks["A"] != SeverityWarn || checks["B"] != SeverityOff {
		t.Errorf("Got %v", checks)
	}

	out, err := json.Marshal(SeverityError)
	if err != nil {
		t.Fatalf("Can't encode severity: %v", err)
	}

	if got, want := string(out), `"ERROR"`; got != want {
		t.Errorf("Got %s, want %s", got, want)
	}

	if _, err := CheckSeverity(7).MarshalText(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("MarshalText() = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	if got, want := CheckSeverity(9).String(), "CheckSeverity(9)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if CheckSeverity(9).Valid() {
		t.Error("Expected CheckSeverity(9) to be invalid")
	}
}
