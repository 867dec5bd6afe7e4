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

// Ordering is the result of comparing two elements under a partial order.
type Ordering int8

const (
	// Less indicates the first element orders before the second.
	Less Ordering = iota - 1

	// Equal indicates the two elements are equal under the order.
	Equal

	// Greater indicates the first element orders after the second.
	Greater

	// Unordered indicates an incomparable pair: the elements are neither
	// less, greater, nor equal. Comparisons involving a floating-point NaN
	// are the canonical case.
	Unordered
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// Reverse flips Less and Greater. Equal and Unordered are unchanged: an
// incomparable pair stays incomparable under either direction.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

// PartialCompare compares two values of any built-in ordered type and
// reports their Ordering. Less, Equal, and Greater match the sign convention
// of cmp.Compare.
//
// All three operator tests fail exactly when the pair is incomparable; for
// the Ordered types that can only happen when a float operand is NaN.
func PartialCompare[T Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	}
	return Unordered
}
