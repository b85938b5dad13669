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

import (
	"znkr.io/movediff/internal/config"
	"znkr.io/movediff/internal/heckel"
	"znkr.io/movediff/internal/script"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // An element stays in place
	Delete           // A deletion of an element from x
	Insert           // An insertion of an element from y
	Move             // An element of x moves to a new position in y
)

// Edit describes a single edit of an edit script.
//
//   - For Delete, X contains the deleted element and PosX its position in x. Y is unset (zero
//     value) and PosY is -1.
//   - For Insert, Y contains the inserted element and PosY its position in y. X is unset (zero
//     value) and PosX is -1.
//   - For Move and Match, X and Y contain the matching elements and PosX and PosY their positions
//     in x and y.
type Edit[T any] struct {
	Op         Op
	X, Y       T
	PosX, PosY int
}

// Edits compares the contents of x and y and returns an edit script that transforms x into y.
//
// The edit script consists of all deletions in ascending order of their position in x, followed by
// all insertions and moves in ascending order of their position in y. Elements that stay in place
// are omitted, unless [Matches] is used. [Apply] applies the edit script to x.
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [movediff.Matches], [movediff.StrictMoves]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts)
	rx, ry := heckel.Diff(x, y)
	return edits(x, y, rx, ry, cfg)
}

// EditsFunc compares the contents of x and y using key to identify elements and returns an edit
// script that transforms x into y.
//
// Elements with the same key are considered equal. If a == b, key(a) == key(b) must hold. Keys
// that are equal for different elements are allowed, but the edit script can't distinguish those
// elements.
//
// The edit script has the same structure as the one returned by [Edits]. For moves and matches, X
// and Y contain the old and the new element, they may differ if their keys are the same.
//
// The following options are supported: [movediff.Matches], [movediff.StrictMoves]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func EditsFunc[T any, K comparable](x, y []T, key func(T) K, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts)
	rx, ry := heckel.DiffFunc(x, y, key)
	return edits(x, y, rx, ry, cfg)
}

func edits[T any](x, y []T, rx, ry []int, cfg config.Config) []Edit[T] {
	sc := script.New(rx, ry, cfg.StrictMoves)

	// Computing the number of edits is cheap and allows us to preallocate the return value.
	n := sc.Len(cfg.Matches)
	if n == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, n)
	for st := range sc.All(cfg.Matches) {
		e := Edit[T]{PosX: st.S, PosY: st.T}
		switch st.Kind {
		case script.Delete:
			e.Op = Delete
			e.X = x[st.S]
		case script.Insert:
			e.Op = Insert
			e.Y = y[st.T]
		case script.Move:
			e.Op = Move
			e.X, e.Y = x[st.S], y[st.T]
		case script.Match:
			e.Op = Match
			e.X, e.Y = x[st.S], y[st.T]
		default:
			panic("never reached")
		}
		eout = append(eout, e)
	}
	return eout
}
