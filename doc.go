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

// Package movediff provides functions to compute edit scripts with moves between two slices.
//
// The main function is [Edits], which returns the deletions, insertions, and moves necessary to
// transform one slice into another. Unlike a classic diff, elements that changed their position are
// reported as a single move instead of a deletion and an insertion. This makes the edit scripts
// well suited for reconciling lists, e.g. to animate changes in a user interface.
//
// [EditsFunc] identifies elements by a key instead of comparing them directly. This is useful to
// find elements that were updated in place: With [Matches], edit scripts also contain all elements
// that stayed in place and both the old and the new version of every matched element is part of
// the edit script.
//
// [Apply] applies an edit script to a slice.
//
// Performance: The complexity is O(N) time and space where N = len(x) + len(y). The algorithm is a
// heuristic, it doesn't find the shortest possible edit script. Elements that appear exactly once
// in both inputs are always matched, repeated elements are only matched if they are next to
// other matched elements or at the start or end of both inputs.
//
// Note: For a line-by-line diff of text or a diff without moves, please see [znkr.io/diff].
//
// [znkr.io/diff]: https://pkg.go.dev/znkr.io/diff
package movediff
