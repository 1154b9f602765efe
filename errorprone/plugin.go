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
	"unicode"
)

// PluginName is the javac plugin name of error-prone.
const PluginName = "ErrorProne"

// PluginArgument joins rendered arguments into the single javac argument
// "-Xplugin:ErrorProne ..." expected by JDK 9 and later.
//
// It returns "" for an empty argument list, which means error-prone is not enabled.
// Arguments containing white space cannot be joined and are rejected with [ErrInvalidArgument].
func PluginArgument(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}

	for _, arg := range args {
		if strings.IndexFunc(arg, unicode.IsSpace) >= 0 {
			return "", fmt.Errorf("argument %q contains white space: %w", arg, ErrInvalidArgument)
		}
	}

	return "-Xplugin:" + PluginName + " " + strings.Join(args, " "), nil
}
