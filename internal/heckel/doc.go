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

// Package heckel contains an implementation of Paul Heckel's diff algorithm.
//
// The algorithm is described in Paul Heckel, "A technique for isolating differences between
// files", Communications of the ACM 21(4), 1978. It runs in O(N) time and space, where N is the
// sum of the lengths of both inputs. Unlike Myers' algorithm it doesn't find a shortest edit script,
// but it does find elements that moved.
//
// # Heckel's Algorithm
//
// The central data structure is a symbol table with one entry for every distinct element in both
// inputs. Every entry counts how often the element occurs in x and in y. The algorithm only needs
// to know if an element is absent, unique, or repeated, so the counts saturate at "many". For
// unique elements in x, the entry also remembers the position of the element.
//
// Every position in x and y starts out with a reference to the symbol table entry of its element.
// The algorithm then resolves references to point to the matching position in the other input. If
// the reference for x[s] is resolved to t, the reference for y[t] is always resolved to s at the
// same time.
//
// Consider x = "ABCAXD" and y = "ABAXDC". The symbol table after scanning both inputs is
//
//	element | x            | y
//	--------+--------------+------
//	A       | many         | many
//	B       | once, at 1   | once
//	C       | once, at 2   | once
//	X       | once, at 4   | once
//	D       | once, at 5   | once
//
// Pass 1 matches all elements that are unique in both inputs: B, C, X, and D. These matches are
// anchors, they are correct no matter what the rest of the input looks like.
//
//	x: A B C A X D
//	y: A B A X D C
//
//	x[1] = B ↔ y[1] = B
//	x[2] = C ↔ y[5] = C
//	x[4] = X ↔ y[3] = X
//	x[5] = D ↔ y[4] = D
//
// Pass 2 grows every match forward: If x[s] matches y[t] and x[s+1] and y[t+1] are unresolved
// references to the same entry, they match as well. Pass 3 does the same thing backwards, here
// x[3] = A is matched with y[2] = A, because x[4] = X matches y[3] = X. Both passes also try to
// match the first and last elements of both inputs respectively, so that runs of repeated elements
// at the start or end of both inputs are matched without any anchor. That's how x[0] = A is matched
// with y[0] = A.
//
// Every position in x that is still unresolved after pass 3 is a deletion and every position in y
// that is still unresolved is an insertion. All other positions are matches. Whether a match is
// also a move is decided by package script.
//
// # Limitations
//
// Repeated elements are only matched if they are adjacent to a match, directly or through a run of
// other matches. For example, x = "ABAB" and y = "BABA" don't share a single match, even though
// three elements could be kept.
package heckel
