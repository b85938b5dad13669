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

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCounter(t *testing.T) {
	tests := []struct {
		name string
		c    counter
		pos  int
		want counter
	}{
		{"zero", zero, 3, 3},
		{"zero-at-zero", zero, 0, 0},
		{"one", 3, 5, many},
		{"one-at-zero", 0, 5, many},
		{"many", many, 1, many},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.inc(tt.pos); got != tt.want {
				t.Errorf("counter(%d).inc(%d) = %d, want %d", tt.c, tt.pos, got, tt.want)
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	x := strings.Split("ABCAXD", "")
	y := strings.Split("ABAXDC", "")
	h := symbols(x, y, func(e string) string { return e })

	// y is scanned first, so IDs are assigned in the order A, B, X, D, C.
	wantEntries := []entry{
		{nx: many, ny: many}, // A
		{nx: 1, ny: 1},       // B
		{nx: 4, ny: 3},       // X
		{nx: 5, ny: 4},       // D
		{nx: 2, ny: 5},       // C
	}
	if diff := cmp.Diff(wantEntries, h.entries, cmp.AllowUnexported(entry{})); diff != "" {
		t.Errorf("symbols(...) entries are different [-want,+got]:\n%s", diff)
	}
	wantRX := []int{^0, ^1, ^4, ^0, ^2, ^3}
	if diff := cmp.Diff(wantRX, h.rx); diff != "" {
		t.Errorf("symbols(...) rx is different [-want,+got]:\n%s", diff)
	}
	wantRY := []int{^0, ^1, ^0, ^2, ^3, ^4}
	if diff := cmp.Diff(wantRY, h.ry); diff != "" {
		t.Errorf("symbols(...) ry is different [-want,+got]:\n%s", diff)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		x, y   string
		rx, ry []int
	}{
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			rx:   []int{0, 1, 2},
			ry:   []int{0, 1, 2},
		},
		{
			name: "empty",
		},
		{
			name: "x-empty",
			y:    "ab",
			ry:   []int{-1, -1},
		},
		{
			name: "y-empty",
			x:    "ab",
			rx:   []int{-1, -1},
		},
		{
			name: "swap",
			x:    "abc",
			y:    "acb",
			rx:   []int{0, 2, 1},
			ry:   []int{0, 2, 1},
		},
		{
			name: "duplicate-key",
			x:    "aab",
			y:    "ab",
			rx:   []int{0, -1, 1},
			ry:   []int{0, 2},
		},
		{
			name: "leading-duplicates",
			x:    "aax",
			y:    "aay",
			rx:   []int{0, 1, -1},
			ry:   []int{0, 1, -1},
		},
		{
			name: "trailing-duplicates",
			x:    "xaa",
			y:    "yaa",
			rx:   []int{-1, 1, 2},
			ry:   []int{-1, 1, 2},
		},
		{
			name: "forward-from-anchor",
			x:    "uaap",
			y:    "quaa",
			rx:   []int{1, 2, 3, -1},
			ry:   []int{-1, 0, 1, 2},
		},
		{
			name: "backward-from-anchor",
			x:    "paau",
			y:    "aauq",
			rx:   []int{-1, 0, 1, 2},
			ry:   []int{1, 2, 3, -1},
		},
		{
			name: "package-doc",
			x:    "ABCAXD",
			y:    "ABAXDC",
			rx:   []int{0, 1, 5, 2, 3, 4},
			ry:   []int{0, 1, 3, 4, 5, 2},
		},
		{
			name: "no-anchor",
			x:    "abab",
			y:    "baba",
			rx:   []int{-1, -1, -1, -1},
			ry:   []int{-1, -1, -1, -1},
		},
		{
			name: "replace",
			x:    "ab",
			y:    "cd",
			rx:   []int{-1, -1},
			ry:   []int{-1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := split(tt.x), split(tt.y)

			t.Run("diff", func(t *testing.T) {
				rx, ry := Diff(x, y)
				if diff := cmp.Diff(tt.rx, rx, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Diff(...) rx differs [-want,+got]:\n%s", diff)
				}
				if diff := cmp.Diff(tt.ry, ry, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Diff(...) ry differs [-want,+got]:\n%s", diff)
				}
			})

			t.Run("diff_func", func(t *testing.T) {
				// Keys are case-insensitive, upper case the y input to make sure the key is used.
				key := strings.ToLower
				rx, ry := DiffFunc(x, split(strings.ToUpper(tt.y)), key)
				if diff := cmp.Diff(tt.rx, rx, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("DiffFunc(...) rx differs [-want,+got]:\n%s", diff)
				}
				if diff := cmp.Diff(tt.ry, ry, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("DiffFunc(...) ry differs [-want,+got]:\n%s", diff)
				}
			})
		})
	}
}

func TestDiffNil(t *testing.T) {
	rx, ry := Diff[string](nil, nil)
	if len(rx) != 0 || len(ry) != 0 {
		t.Errorf("Diff(nil, nil) = %v, %v, want empty references", rx, ry)
	}
}

// Matches are always mutual and matched elements are always equal.
func TestMutualReferences(t *testing.T) {
	for i := range 200 {
		name := fmt.Sprintf("seed=%d", i)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := make([]int, rng.IntN(30))
			for s := range x {
				x[s] = rng.IntN(8)
			}
			y := make([]int, rng.IntN(30))
			for i := range y {
				y[i] = rng.IntN(8)
			}

			rx, ry := Diff(x, y)
			if len(rx) != len(x) || len(ry) != len(y) {
				t.Fatalf("Diff(%v, %v) returned %d and %d references, want %d and %d", x, y, len(rx), len(ry), len(x), len(y))
			}
			for s, j := range rx {
				if j < 0 {
					continue
				}
				if ry[j] != s {
					t.Errorf("Diff(%v, %v): rx[%d] = %d, but ry[%d] = %d", x, y, s, j, j, ry[j])
				}
				if x[s] != y[j] {
					t.Errorf("Diff(%v, %v): x[%d] = %d matches y[%d] = %d", x, y, s, x[s], j, y[j])
				}
			}
			for j, s := range ry {
				if s >= 0 && rx[s] != j {
					t.Errorf("Diff(%v, %v): ry[%d] = %d, but rx[%d] = %d", x, y, j, s, s, rx[s])
				}
			}
		})
	}
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

func BenchmarkDiff(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		name := fmt.Sprintf("N=%d", n)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := make([]int, n)
			for i := range x {
				x[i] = rng.IntN(n)
			}
			y := make([]int, n)
			copy(y, x)
			for range n / 10 {
				i, j := rng.IntN(n), rng.IntN(n)
				y[i], y[j] = y[j], -y[i]
			}
			for b.Loop() {
				_, _ = Diff(x, y)
			}
		})
	}
}
