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

package heckel

import "fmt"

// counter counts the occurrences of an element in one input. The count saturates at many. While an
// element occurs exactly once, the counter is the position of that occurrence.
type counter int

const (
	zero counter = -1
	many counter = -2
)

// inc registers an occurrence at position pos.
func (c counter) inc(pos int) counter {
	if c == zero {
		return counter(pos)
	}
	return many
}

// entry is a symbol table entry. There's one entry for every distinct element in x and y.
type entry struct {
	nx, ny counter
}

// heckel holds the working state for a single diff.
//
// The reference vectors rx and ry have one reference for every element in x and y respectively. A
// non-negative reference is the position of the matching element in the other input. A negative
// reference r refers to the symbol table entry entries[^r]. Two unresolved references are for the
// same element iff they are equal.
type heckel struct {
	entries []entry
	rx, ry  []int
}

// Diff compares the contents of x and y and returns the matches between them.
//
// If x[s] matches y[t], rx[s] = t and ry[t] = s. Elements without match have a reference of -1.
func Diff[T comparable](x, y []T) (rx, ry []int) {
	return DiffFunc(x, y, func(e T) T { return e })
}

// DiffFunc compares the contents of x and y using key to identify elements and returns the matches
// between them. Elements with the same key are treated as equal.
//
// If x[s] matches y[t], rx[s] = t and ry[t] = s. Elements without match have a reference of -1.
func DiffFunc[T any, K comparable](x, y []T, key func(T) K) (rx, ry []int) {
	h := symbols(x, y, key)
	h.matchUnique()
	h.expandForward()
	h.expandBackward()

	// All references that are still pointing into the symbol table are unmatched.
	for s, t := range h.rx {
		if t < 0 {
			h.rx[s] = -1
		}
	}
	for t, s := range h.ry {
		if s < 0 {
			h.ry[t] = -1
		}
	}
	return h.rx, h.ry
}

// symbols builds the symbol table for x and y and initializes all references to point to the
// entries in the symbol table.
func symbols[T any, K comparable](x, y []T, key func(T) K) *heckel {
	r := make([]int, len(x)+len(y))
	h := &heckel{
		rx: r[:len(x):len(x)],
		ry: r[len(x):],
	}

	idx := make(map[K]int, len(y))
	lookup := func(e T) int {
		k := key(e)
		id, ok := idx[k]
		if !ok {
			id = len(h.entries)
			idx[k] = id
			h.entries = append(h.entries, entry{nx: zero, ny: zero})
		}
		return id
	}

	// The order doesn't matter for the result, y is scanned first to match the description in
	// Heckel's paper.
	for t, e := range y {
		id := lookup(e)
		h.entries[id].ny = h.entries[id].ny.inc(t)
		h.ry[t] = ^id
	}
	for s, e := range x {
		id := lookup(e)
		h.entries[id].nx = h.entries[id].nx.inc(s)
		h.rx[s] = ^id
	}
	return h
}

// link matches x[s] with y[t].
func (h *heckel) link(s, t int) {
	if h.rx[s] >= 0 || h.ry[t] >= 0 {
		panic(fmt.Sprintf("x[%d] or y[%d] is already matched", s, t))
	}
	h.rx[s] = t
	h.ry[t] = s
}

// matchUnique matches all elements that occur exactly once in both x and y (pass 1).
func (h *heckel) matchUnique() {
	for t, r := range h.ry {
		e := h.entries[^r]
		if e.nx >= 0 && e.ny >= 0 {
			h.link(int(e.nx), t)
		}
	}
}

// expandForward extends every match to the following elements as long as they refer to the same
// entry (pass 2).
func (h *heckel) expandForward() {
	rx, ry := h.rx, h.ry
	if len(rx) > 0 && len(ry) > 0 && rx[0] < 0 && rx[0] == ry[0] {
		h.link(0, 0)
	}
	for t := 0; t+1 < len(ry); t++ {
		s := ry[t]
		if s < 0 || s+1 >= len(rx) {
			continue
		}
		if r := rx[s+1]; r < 0 && r == ry[t+1] {
			h.link(s+1, t+1)
		}
	}
}

// expandBackward extends every match to the preceding elements as long as they refer to the same
// entry (pass 3).
func (h *heckel) expandBackward() {
	rx, ry := h.rx, h.ry
	n, m := len(rx), len(ry)
	if n > 0 && m > 0 && rx[n-1] < 0 && rx[n-1] == ry[m-1] {
		h.link(n-1, m-1)
	}
	for t := m - 1; t > 0; t-- {
		s := ry[t]
		if s <= 0 {
			continue
		}
		if r := rx[s-1]; r < 0 && r == ry[t-1] {
			h.link(s-1, t-1)
		}
	}
}
