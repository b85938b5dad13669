// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package movediff

import "znkr.io/movediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Matches adds a [Match] edit for every element that stays in place to the edit script returned by
// [Edits] and [EditsFunc].
//
// Together with [EditsFunc], this makes it possible to find elements whose key stayed the same but
// whose contents changed.
func Matches() Option {
	return func(cfg *config.Config) {
		cfg.Matches = true
	}
}

// StrictMoves reports every matched element as a move if its position can't be explained by the
// deletions and insertions before it alone.
//
// By default, such an element stays in place if it's possible without reordering the elements
// around it. For example, swapping two adjacent elements is a single move by default but two moves
// with StrictMoves.
func StrictMoves() Option {
	return func(cfg *config.Config) {
		cfg.StrictMoves = true
	}
}
