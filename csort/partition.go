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

package csort

// converge runs one cursor-convergence pass over the inclusive range
// [lo, hi] and returns the index where the two cursors meet. The element at
// that index is the pivot, in its final position for the requested
// direction: every comparable element on its left compares correctly against
// it, and likewise on its right.
//
// The two cursors start at the range ends. Each step compares the elements
// under them; a pair is misordered when its ordering contradicts the cursor
// positions for the requested direction. A misordered pair is swapped and
// the cursors exchange roles, so each keeps tracking the element just moved
// under it. Then the numerically smaller cursor advances one step toward the
// other. The cursor gap shrinks by exactly one per iteration, so the pass
// makes exactly hi-lo comparisons and cannot leave [lo, hi].
//
// Equal and Unordered pairs are never misordered: incomparable elements
// produce no actionable signal and are left where they stand.
func converge(data Interface, lo, hi int, descending bool) int {
	cur1, cur2 := lo, hi
	for cur1 != cur2 {
		o := data.Compare(cur1, cur2)
		if descending {
			o = o.Reverse()
		}
		if (o == Greater && cur1 < cur2) || (o == Less && cur1 > cur2) {
			data.Swap(cur1, cur2)
			cur1, cur2 = cur2, cur1
		}
		if cur1 < cur2 {
			cur1++
		} else {
			cur1--
		}
	}
	return cur1
}

// Partition runs a single ascending convergence pass over all of data and
// returns the pivot's final index. After it returns:
//   - every comparable element left of the pivot is not Greater than it
//   - every comparable element right of the pivot is not Less than it
//
// The sub-ranges on either side are generally still unsorted. Sequences of
// length 0 or 1 have no work to do; the return value is Len()-1, so -1 on an
// empty sequence.
func Partition(data Interface) int {
	n := data.Len()
	if n <= 1 {
		return n - 1
	}
	return converge(data, 0, n-1, false)
}
