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

import "iter"

// entries maps names to values, iterating in order of first insertion.
type entries[V any] struct {
	names  []string
	values map[string]V
}

// put sets name to value. Overwriting keeps the original position.
func (e *entries[V]) put(name string, value V) {
	if e.values == nil {
		e.values = make(map[string]V)
	}

	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}

	e.values[name] = value
}

func (e *entries[V]) len() int { return len(e.names) }

func (e *entries[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range e.names {
			if !yield(name, e.values[name]) {
				return
			}
		}
	}
}
