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
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is matched by every [InvalidNameError].
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidArgument is returned for absent or malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidNameError reports a check or option name that cannot be rendered as a compiler flag.
type InvalidNameError struct {
	Kind   string // "check" or "option"
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// Is makes [errors.Is] match [ErrInvalidName].
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }
