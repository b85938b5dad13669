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

// Package script turns matches between two slices into an edit script of deletions, insertions,
// and moves. This is the internal representation of edit scripts, it's translated into the user
// facing API by the root package.
package script

import (
	"fmt"
	"iter"
	"math"
)

// Kind describes the kind of a step.
type Kind int

const (
	Match Kind = iota
	Delete
	Insert
	Move
)

// Step is a single step of an edit script.
type Step struct {
	Kind Kind
	S, T int // Position in x and y, -1 if not applicable.
}

// Script is the edit script for a pair of reference vectors as returned by package heckel.
type Script struct {
	rx, ry  []int
	moved   []bool // moved[t] is true if y[t] is moved from x[ry[t]].
	deletes int
	inserts int
	moves   int
}

// New creates the edit script for the references rx and ry.
//
// A matched element is displaced if its position among the remaining elements of x (after all
// deletions) is different from its position among the matched elements of y (without insertions).
// If strict is set, every displaced element is moved. Otherwise, displaced elements are only moved
// if they can't stay in place without changing the order of other elements that stay in place.
func New(rx, ry []int, strict bool) *Script {
	sc := &Script{
		rx:    rx,
		ry:    ry,
		moved: make([]bool, len(ry)),
	}

	// Number of deletions before every position in x.
	dels := make([]int, len(rx))
	for s, t := range rx {
		dels[s] = sc.deletes
		switch {
		case t < 0:
			sc.deletes++
		case t >= len(ry) || ry[t] != s:
			panic(fmt.Sprintf("inconsistent references: x[%d] -> y[%d] is not mutual", s, t))
		}
	}

	for t, s := range ry {
		switch {
		case s < 0:
			sc.inserts++
		case s >= len(rx) || rx[s] != t:
			panic(fmt.Sprintf("inconsistent references: y[%d] -> x[%d] is not mutual", t, s))
		default:
			sc.moved[t] = s-dels[s] != t-sc.inserts
		}
	}

	if !strict {
		sc.keepInPlace()
	}

	for _, m := range sc.moved {
		if m {
			sc.moves++
		}
	}
	return sc
}

// keepInPlace clears the moved flag for displaced elements that fit between the elements that stay
// in place.
//
// Elements that are not displaced are in increasing order in both x and y. A displaced element
// y[t] = x[s] can stay in place too, if s is larger than the position of the previous element
// that stays in place and smaller than the position of the next element that isn't displaced.
// This is a greedy approach and doesn't guarantee the smallest number of moves, but it runs in
// linear time and catches common cases like swaps of two elements.
func (sc *Script) keepInPlace() {
	ry, moved := sc.ry, sc.moved

	// next[t] is the position in x of the first element at or after y[t] that isn't displaced.
	next := make([]int, len(ry)+1)
	next[len(ry)] = math.MaxInt
	for t := len(ry) - 1; t >= 0; t-- {
		next[t] = next[t+1]
		if ry[t] >= 0 && !moved[t] {
			next[t] = ry[t]
		}
	}

	last := -1
	for t, s := range ry {
		switch {
		case s < 0:
			// insertion
		case !moved[t]:
			last = s
		case last < s && s < next[t+1]:
			moved[t] = false
			last = s
		}
	}
}

// Len returns the number of steps in the edit script.
func (sc *Script) Len(matches bool) int {
	n := sc.deletes + sc.inserts + sc.moves
	if matches {
		n += len(sc.ry) - sc.inserts - sc.moves
	}
	return n
}

// All returns all steps of the edit script: All deletions in ascending order of their position in
// x, followed by insertions and moves in ascending order of their position in y. If matches is set,
// the steps include matches for elements that stay in place.
func (sc *Script) All(matches bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for s, t := range sc.rx {
			if t < 0 && !yield(Step{Delete, s, -1}) {
				return
			}
		}
		for t, s := range sc.ry {
			var st Step
			switch {
			case s < 0:
				st = Step{Insert, -1, t}
			case sc.moved[t]:
				st = Step{Move, s, t}
			case matches:
				st = Step{Match, s, t}
			default:
				continue
			}
			if !yield(st) {
				return
			}
		}
	}
}
