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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const settingsFile = `
disable-warnings-in-generated-code = true
all-errors-as-warnings = true
excluded-paths = "build/generated/"
args = ["-XepPatchLocation:IN_PLACE"]

[checks]
NullAway = "warn"
MissingSummary = "off"

[options]
"NullAway:AnnotatedPackages" = "com.example"
"NullAway:TreatGeneratedAsUnannotated" = true
`

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "errorprone.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write settings: %v", err)
	}

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr strings.Builder

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestRender(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, settingsFile)

	tests := [...]struct {
		name string
		args []string
		want []string
	}{
		{
			name: "file",
			args: []string{"render", "--config", path},
			want: []string{
				"-XepAllErrorsAsWarnings",
				"-XepDisableWarningsInGeneratedCode",
				"-XepExcludedPaths:build/generated/",
				"-Xep:MissingSummary:OFF",
				"-Xep:NullAway:WARN",
				"-XepOpt:NullAway:AnnotatedPackages=com.example",
				"-XepOpt:NullAway:TreatGeneratedAsUnannotated=true",
				"-XepPatchLocation:IN_PLACE",
			},
		},
		{
			name: "overrides",
			args: []string{
				"render", "-c", path,
				"--check", "NullAway:ERROR", "--check", "ArrayEquals",
				"--option", "Extra",
				"--", "-XepPatchChecks:ArrayEquals",
			},
			want: []string{
				"-XepAllErrorsAsWarnings",
				"-XepDisableWarningsInGeneratedCode",
				"-XepExcludedPaths:build/generated/",
				"-Xep:MissingSummary:OFF",
				"-Xep:NullAway:ERROR",
				"-Xep:ArrayEquals",
				"-XepOpt:NullAway:AnnotatedPackages=com.example",
				"-XepOpt:NullAway:TreatGeneratedAsUnannotated=true",
				"-XepOpt:Extra=true",
				"-XepPatchLocation:IN_PLACE",
				"-XepPatchChecks:ArrayEquals",
			},
		},
		{
			name: "switches",
			args: []string{
				"render", "-c", path,
				"--disable-all-checks", "--all-errors-as-warnings=false",
				"--compiling-test-only-code", "--disable-warnings-in-generated-code=false",
				"--excluded-paths", "src/test/",
			},
			want: []string{
				"-XepDisableAllChecks",
				"-XepCompilingTestOnlyCode",
				"-XepExcludedPaths:src/test/",
				"-Xep:MissingSummary:OFF",
				"-Xep:NullAway:WARN",
				"-XepOpt:NullAway:AnnotatedPackages=com.example",
				"-XepOpt:NullAway:TreatGeneratedAsUnannotated=true",
				"-XepPatchLocation:IN_PLACE",
			},
		},
		{
			name: "switches without file",
			args: []string{
				"render", "--ignore-unknown-check-names", "--all-disabled-checks-as-warnings",
				"--check", "A",
			},
			want: []string{
				"-XepAllDisabledChecksAsWarnings",
				"-XepIgnoreUnknownCheckNames",
				"-Xep:A",
			},
		},
		{
			name: "clear excluded paths",
			args: []string{
				"render", "-c", path, "--excluded-paths=",
				"--all-errors-as-warnings=false", "--disable-warnings-in-generated-code=0",
			},
			want: []string{
				"-Xep:MissingSummary:OFF",
				"-Xep:NullAway:WARN",
				"-XepOpt:NullAway:AnnotatedPackages=com.example",
				"-XepOpt:NullAway:TreatGeneratedAsUnannotated=true",
				"-XepPatchLocation:IN_PLACE",
			},
		},
		{
			name: "plugin",
			args: []string{"render", "--plugin", "--check", "A:OFF", "--check", "B"},
			want: []string{"-Xplugin:ErrorProne -Xep:A:OFF -Xep:B"},
		},
		{
			name: "disabled",
			args: []string{"render", "-c", path, "--disable"},
			want: nil,
		},
		{
			name: "disabled plugin",
			args: []string{"render", "--plugin", "--disable", "--check", "A"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, lines(out)); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func lines(out string) []string {
	if out == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		content string
		args    []string
		wantErr string
	}{
		{"syntax", "checks = [", nil, "failed to parse TOML"},
		{"unknown key", "unknown = 1", nil, "decoding settings"},
		{"severity", "[checks]\nA = \"fatal\"", nil, "unknown check severity"},
		{"check name", "[checks]\n\"A B\" = \"warn\"", nil, "contains white space"},
		{"flag", "", []string{"--check", ":WARN"}, "empty name"},
		{"excluded paths", "", []string{"--excluded-paths", "("}, "--excluded-paths"},
		{"switch value", "", []string{"--disable-all-checks=maybe"}, "maybe"},
		{"plugin white space", "", []string{"--plugin", "--option", "Packages=a b"}, "contains white space"},
		{"plugin raw white space", "", []string{"--plugin", "--", "-XepPatchChecks:A B"}, "contains white space"},
		{"stray argument", "", []string{"build.gradle"}, "must follow"},
		{"argument before dash", "", []string{"extra", "--", "-Xep:B"}, "must follow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeSettings(t, tt.content)

			_, err := execute(t, append([]string{"render", "-c", path}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRenderMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, "render", "-c", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing settings file")
	}
}
