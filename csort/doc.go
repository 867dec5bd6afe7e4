// Copyright 2026 go-cursorsort Authors
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

// Package csort provides cursorsort, an in-place quicksort variant that
// selects and places each pivot with a two-cursor convergence scan instead
// of a classic single-pass partition.
//
// # Algorithm
//
// One pass walks two cursors from the ends of the active range toward each
// other. Whenever the elements under the cursors are misordered for the
// requested direction, they are swapped and the cursors exchange roles, so
// each cursor keeps tracking the element just moved under it. The cursor gap
// shrinks by one per step; where the cursors meet, the element is in its
// final sorted position. The ranges on either side of that pivot are then
// processed the same way, driven by an explicit worklist rather than
// recursion, so adversarial inputs cost heap space instead of native call
// stack.
//
// Like classic quicksort, cursorsort is not stable and has quadratic worst
// cases: already sorted input costs exactly n(n-1)/2 comparisons.
//
// # Partial Orders
//
// Comparisons are four-way: Less, Equal, Greater, or Unordered. Incomparable
// pairs (floating-point NaN being the canonical case) are never treated as
// misordered and carry no placement guarantee; everything else sorts around
// them. No input panics: empty, single-element, duplicate-laden, and
// NaN-laden sequences are all fine.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-cursorsort/csort"
//
//	func Process(data []float64) {
//	    csort.SortSlice(data)            // ascending, in place
//	}
//
//	func Rank(scores []int) {
//	    csort.SortSliceDescending(scores)
//	}
//
// Arbitrary containers implement Interface, which needs a length, a
// four-way index comparison, and an index swap:
//
//	csort.Sort(byAge(people))
//
// # Performance
//
// Every convergence pass over k+1 elements makes exactly k comparisons and
// at most k swaps. Expect quicksort-like O(n log n) behavior on random
// input and O(n²) on sorted, reverse-sorted, or all-equal input. There is
// no heapsort or insertion fallback; callers who need a worst-case bound
// over adversarial data should reach for the standard library instead.
package csort
