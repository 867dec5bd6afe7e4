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

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

// checkPartitioned verifies the pivot contract on a totally ordered slice:
// nothing left of p exceeds data[p], nothing right of p undercuts it.
func checkPartitioned[T Ordered](t *testing.T, data []T, p int) {
	t.Helper()
	if p < 0 || p >= len(data) {
		t.Fatalf("pivot index %d out of range [0, %d)", p, len(data))
	}
	for i := 0; i < p; i++ {
		if PartialCompare(data[i], data[p]) == Greater {
			t.Errorf("data[%d]=%v > pivot data[%d]=%v", i, data[i], p, data[p])
		}
	}
	for i := p + 1; i < len(data); i++ {
		if PartialCompare(data[i], data[p]) == Less {
			t.Errorf("data[%d]=%v < pivot data[%d]=%v", i, data[i], p, data[p])
		}
	}
}

// TestPartitionEmpty tests partitioning an empty collection
func TestPartitionEmpty(t *testing.T) {
	var data []int
	if p := Partition(Slice[int](data)); p != -1 {
		t.Errorf("Partition(empty) = %d, want -1", p)
	}
}

// TestPartitionSingle tests partitioning a single element
func TestPartitionSingle(t *testing.T) {
	data := []int{42}
	if p := Partition(Slice[int](data)); p != 0 {
		t.Errorf("Partition([42]) = %d, want 0", p)
	}
	if data[0] != 42 {
		t.Errorf("Partition modified single element: %v", data)
	}
}

// TestPartitionPair tests both orientations of a two element collection
func TestPartitionPair(t *testing.T) {
	data := []int{1, 2}
	p := Partition(Slice[int](data))
	checkPartitioned(t, data, p)
	if !slices.Equal(data, []int{1, 2}) {
		t.Errorf("Partition([1,2]) reordered to %v", data)
	}

	data = []int{2, 1}
	p = Partition(Slice[int](data))
	checkPartitioned(t, data, p)
	if !slices.Equal(data, []int{1, 2}) {
		t.Errorf("Partition([2,1]) = %v, want [1,2]", data)
	}
}

// TestPartitionSortedInput verifies the pivot converges at the top of
// already-sorted data
func TestPartitionSortedInput(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	p := Partition(Slice[int](data))
	if p != len(data)-1 {
		t.Errorf("Partition(sorted) = %d, want %d", p, len(data)-1)
	}
	if !slices.Equal(data, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Partition(sorted) reordered to %v", data)
	}
}

// TestPartitionReversedInput verifies the pivot converges at the bottom of
// reverse-sorted data
func TestPartitionReversedInput(t *testing.T) {
	data := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	p := Partition(Slice[int](data))
	if p != 0 {
		t.Errorf("Partition(reversed) = %d, want 0", p)
	}
	if data[0] != 1 {
		t.Errorf("Partition(reversed) pivot value = %v, want 1", data[0])
	}
	checkPartitioned(t, data, p)
}

// TestPartitionAllEqual tests that equal elements never swap and the pivot
// lands at the end
func TestPartitionAllEqual(t *testing.T) {
	data := []int{7, 7, 7, 7, 7, 7}
	p := Partition(Slice[int](data))
	if p != len(data)-1 {
		t.Errorf("Partition(allEqual) = %d, want %d", p, len(data)-1)
	}
}

// TestPartitionPivotFinalPosition verifies the pivot value matches what a
// full sort would place at that index
func TestPartitionPivotFinalPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, n := range []int{2, 3, 5, 16, 64, 333, 1000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(n) // force duplicates
		}
		ref := slices.Clone(data)
		slices.Sort(ref)

		p := Partition(Slice[int](data))
		checkPartitioned(t, data, p)
		if data[p] != ref[p] {
			t.Errorf("n=%d: pivot value data[%d]=%v, sorted reference holds %v", n, p, data[p], ref[p])
		}
	}
}

// TestPartitionPreservesElements verifies partitioning permutes rather than
// rewrites
func TestPartitionPreservesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]int32, 200)
	for i := range data {
		data[i] = rng.Int31n(40)
	}
	orig := slices.Clone(data)

	Partition(Slice[int32](data))

	slices.Sort(data)
	slices.Sort(orig)
	if !slices.Equal(data, orig) {
		t.Errorf("Partition changed the element multiset")
	}
}

// TestPartitionNaNAnchor tests the degenerate case where the convergence
// anchor is incomparable with everything: no swaps happen and the pivot
// stays at the top index
func TestPartitionNaNAnchor(t *testing.T) {
	data := []float64{2, 1, math.NaN()}
	p := Partition(Slice[float64](data))
	if p != 2 {
		t.Errorf("Partition(NaN anchor) = %d, want 2", p)
	}
	if data[0] != 2 || data[1] != 1 || !math.IsNaN(data[2]) {
		t.Errorf("Partition(NaN anchor) reordered to %v", data)
	}
}

// TestPartitionStrings exercises partitioning over a non-numeric element type
func TestPartitionStrings(t *testing.T) {
	data := []string{"pear", "apple", "quince", "banana", "fig"}
	p := Partition(Slice[string](data))
	checkPartitioned(t, data, p)

	ref := []string{"apple", "banana", "fig", "pear", "quince"}
	if data[p] != ref[p] {
		t.Errorf("pivot value data[%d]=%q, sorted reference holds %q", p, data[p], ref[p])
	}
}
