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

// Interface is the capability a sequence exposes to be sorted: a length, an
// index-pair comparison, and an index-pair swap. It is the four-way analog of
// the standard library's sort.Interface, with Less generalized to Compare so
// that incomparable pairs can be reported instead of forced into a total
// order.
//
// The sort never reads elements directly and never copies them into auxiliary
// storage; all rearrangement happens through Swap.
type Interface interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// Compare reports the Ordering of the elements at indices i and j.
	Compare(i, j int) Ordering

	// Swap exchanges the elements at indices i and j.
	Swap(i, j int)
}

// Sort sorts data in place into ascending order: after it returns, every
// comparable pair of elements at positions i < j satisfies
// Compare(i, j) != Greater. Incomparable pairs may end up in either relative
// order.
//
// Sorting is done by cursor-convergence quicksort: one convergence pass
// places a pivot into its final position, and the two sub-ranges it induces
// are processed independently. There is no stability guarantee between equal
// elements, and adversarial inputs (already sorted ranges among them)
// degrade to quadratic comparison counts.
func Sort(data Interface) {
	sortSpans(data, false)
}

// SortDescending sorts data in place into descending order: after it
// returns, every comparable pair at positions i < j satisfies
// Compare(i, j) != Less.
func SortDescending(data Interface) {
	sortSpans(data, true)
}

// IsSorted reports whether no adjacent comparable pair of data is in
// descending order. For sequences whose elements are totally ordered this is
// exactly "data is sorted ascending"; when incomparable elements are present
// the adjacent scan cannot see past them, so a true result does not extend
// to non-adjacent pairs.
func IsSorted(data Interface) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Compare(i-1, i) == Greater {
			return false
		}
	}
	return true
}

// IsSortedDescending reports whether no adjacent comparable pair of data is
// in ascending order.
func IsSortedDescending(data Interface) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Compare(i-1, i) == Less {
			return false
		}
	}
	return true
}

// span is an inclusive index range awaiting a convergence pass.
type span struct {
	lo, hi int
}

// sortSpans drives the sort with an explicit worklist instead of recursing,
// so the worst-case pass depth (up to the sequence length on adversarial
// input) costs heap space rather than native call stack.
func sortSpans(data Interface, descending bool) {
	n := data.Len()
	if n <= 1 {
		return
	}

	// 2*ceil(log2(n)) holds every balanced split; degenerate splits push at
	// most one span at a time, so growth beyond this is rare.
	depth := 0
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	work := make([]span, 0, 2*depth)
	work = append(work, span{0, n - 1})

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		p := converge(data, s.lo, s.hi, descending)

		left := span{s.lo, p - 1}
		right := span{p + 1, s.hi}

		// Push the larger side first so the smaller is processed next,
		// keeping the worklist height logarithmic.
		if left.hi-left.lo >= right.hi-right.lo {
			left, right = right, left
		}
		if right.hi > right.lo {
			work = append(work, right)
		}
		if left.hi > left.lo {
			work = append(work, left)
		}
	}
}
