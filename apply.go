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

import "fmt"

// Apply applies the edit script edits to x and returns the result.
//
// The edit script must have the structure of the edit scripts returned by [Edits]: All deletions in
// ascending order of their position in x first, followed by insertions, moves, and matches in
// ascending order of their position in y. Apply removes all deleted and moved elements from x and
// then places the inserted and moved elements at their position in y. All other positions in y
// are filled with the remaining elements of x in their original order.
//
// For insertions, moves, and matches, the element in Y is used. Elements that stay in place
// without a match in the edit script are taken from x. With an edit script from [EditsFunc], the
// result is only identical to y if matched elements with equal keys are identical too. Use
// [Matches] to get an edit script that always reproduces y.
//
// Apply returns an error if the edit script is inconsistent with x.
func Apply[T any](x []T, edits []Edit[T]) ([]T, error) {
	removed := make([]bool, len(x))

	ndel := 0
	for ; ndel < len(edits) && edits[ndel].Op == Delete; ndel++ {
		s := edits[ndel].PosX
		if s < 0 || s >= len(x) {
			return nil, fmt.Errorf("edit %d: delete position %d out of range [0,%d)", ndel, s, len(x))
		}
		if ndel > 0 && s <= edits[ndel-1].PosX {
			return nil, fmt.Errorf("edit %d: delete position %d not in ascending order", ndel, s)
		}
		removed[s] = true
	}

	// Lift all moved elements out of x.
	rest := edits[ndel:]
	nins, nmov := 0, 0
	for i, e := range rest {
		switch e.Op {
		case Insert:
			nins++
		case Move:
			s := e.PosX
			if s < 0 || s >= len(x) {
				return nil, fmt.Errorf("edit %d: move position %d out of range [0,%d)", ndel+i, s, len(x))
			}
			if removed[s] {
				return nil, fmt.Errorf("edit %d: moved element at %d was already deleted or moved", ndel+i, s)
			}
			removed[s] = true
			nmov++
		case Match:
			// Checked below.
		case Delete:
			return nil, fmt.Errorf("edit %d: delete after insert, move, or match", ndel+i)
		default:
			return nil, fmt.Errorf("edit %d: unknown operation %v", ndel+i, e.Op)
		}
	}

	stay := make([]int, 0, len(x)-ndel-nmov)
	for s := range x {
		if !removed[s] {
			stay = append(stay, s)
		}
	}

	m := len(stay) + nins + nmov
	y := make([]T, 0, m)
	i, j := 0, 0 // next edit in rest and next element in stay
	for t := range m {
		var e *Edit[T]
		if i < len(rest) {
			if rest[i].PosY < t {
				return nil, fmt.Errorf("edit %d: position %d not in ascending order", ndel+i, rest[i].PosY)
			}
			if rest[i].PosY == t {
				e = &rest[i]
				i++
			}
		}
		switch {
		case e != nil && e.Op != Match:
			y = append(y, e.Y)
		case j >= len(stay):
			return nil, fmt.Errorf("no element left in x for position %d", t)
		case e != nil:
			if stay[j] != e.PosX {
				return nil, fmt.Errorf("edit %d: matched element at %d doesn't stay in place", ndel+i-1, e.PosX)
			}
			y = append(y, e.Y)
			j++
		default:
			y = append(y, x[stay[j]])
			j++
		}
	}
	if i < len(rest) {
		return nil, fmt.Errorf("edit %d: position %d out of range [0,%d)", ndel+i, rest[i].PosY, m)
	}
	return y, nil
}
