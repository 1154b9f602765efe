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
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"fillmore-labs.com/epflags/errorprone"
	"fillmore-labs.com/epflags/settings"
)

type renderFlags struct {
	config  string
	checks  []string
	options []string
	plugin  bool
	disable bool
	verbose bool

	// switches holds command line values of the global flags, applied for those in changed.
	switches *errorprone.Registry
	changed  []errorprone.Switch

	excludedPaths    string
	excludedPathsSet bool
}

func newRenderCommand() *cobra.Command {
	f := renderFlags{switches: errorprone.New()}

	cmd := &cobra.Command{
		Use:   "render [flags] [-- raw-arguments...]",
		Short: "Print the compiler arguments for a settings file",
		Long: `Render reads error-prone settings from a TOML file, applies command line
overrides and prints the resulting compiler arguments, one per line.
Raw compiler arguments must follow "--" and are appended verbatim.`,
		Args: rawArgsAfterDash,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			for s := range errorprone.Switches() {
				if flags.Changed(switchFlagName(s)) {
					f.changed = append(f.changed, s)
				}
			}

			f.excludedPathsSet = flags.Changed("excluded-paths")

			return runRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), &f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "TOML settings `file`")
	flags.StringArrayVar(&f.checks, "check", nil, "configure a check as NAME[:SEVERITY], overriding the settings file")
	flags.StringArrayVar(&f.options, "option", nil, "configure a check option as NAME[=VALUE], overriding the settings file")
	flags.StringVar(&f.excludedPaths, "excluded-paths", "", "`regex` of source paths to skip, overriding the settings file")

	for s := range errorprone.Switches() {
		v := errorprone.NewSwitchValue(f.switches, s)
		flags.VarPF(v, switchFlagName(s), "", "pass "+s.Flag()+", overriding the settings file").NoOptDefVal = "true"
	}

	flags.BoolVar(&f.plugin, "plugin", false, "print a single -Xplugin:ErrorProne argument")
	flags.BoolVar(&f.disable, "disable", false, "disable error-prone")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log the effective configuration")

	return cmd
}

// rawArgsAfterDash accepts positional arguments only after "--".
func rawArgsAfterDash(cmd *cobra.Command, args []string) error {
	if n := cmd.ArgsLenAtDash(); n > 0 || n < 0 && len(args) > 0 {
		if n < 0 {
			n = len(args)
		}

		return fmt.Errorf("unexpected arguments %q, raw compiler arguments must follow \"--\"", args[:n])
	}

	return nil
}

// switchFlagName converts a switch name like "DisableAllChecks" to "disable-all-checks".
func switchFlagName(s errorprone.Switch) string {
	var b strings.Builder
	for i, c := range s.Name() {
		if unicode.IsUpper(c) {
			if i > 0 {
				b.WriteByte('-')
			}

			c = unicode.ToLower(c)
		}

		b.WriteRune(c)
	}

	return b.String()
}

func runRender(stdout, stderr io.Writer, f *renderFlags, args []string) error {
	logger := newLogger(stderr, f.verbose)

	r := errorprone.New()

	if f.config != "" {
		s, err := loadSettings(f.config)
		if err != nil {
			return err
		}

		logger.Debug("Loaded settings", slog.String("file", f.config), errorprone.Options(s.RegistryOptions()).LogAttr())

		if err := s.Apply(r); err != nil {
			return fmt.Errorf("%s: %w", f.config, err)
		}
	}

	for _, s := range f.changed {
		r.SetSwitch(s, f.switches.Switch(s))
	}

	if f.excludedPathsSet {
		if err := r.SetExcludedPaths(f.excludedPaths); err != nil {
			return fmt.Errorf("--excluded-paths: %w", err)
		}
	}

	if err := setAll(errorprone.NewCheckValue(r), "check", f.checks); err != nil {
		return err
	}

	if err := setAll(errorprone.NewOptionValue(r), "option", f.options); err != nil {
		return err
	}

	if len(args) > 0 {
		if err := r.AddRawArguments(args); err != nil {
			return err
		}
	}

	if f.disable {
		r.SetEnabled(false)
	}

	logger.Debug("Rendering", slog.Any("registry", r))

	rendered := r.Render()

	if f.plugin {
		arg, err := errorprone.PluginArgument(rendered)
		if err != nil || arg == "" {
			return err
		}

		_, err = fmt.Fprintln(stdout, arg)

		return err
	}

	for _, arg := range rendered {
		if _, err := fmt.Fprintln(stdout, arg); err != nil {
			return err
		}
	}

	return nil
}

func setAll(v errorprone.Value, flag string, values []string) error {
	for _, value := range values {
		if err := v.Set(value); err != nil {
			return fmt.Errorf("--%s %q: %w", flag, value, err)
		}
	}

	return nil
}

// loadSettings reads a TOML settings file.
func loadSettings(path string) (settings.Settings, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return settings.Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	s, err := settings.Decode(raw)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
