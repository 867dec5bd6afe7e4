package csort

// Slice adapts a Go slice of any built-in ordered type to Interface using
// PartialCompare. Because slices are views, the same adapter serves fixed
// arrays (arr[:]), growable buffers, and sub-views of larger sequences.
type Slice[T Ordered] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// Compare reports the Ordering of s[i] and s[j].
func (s Slice[T]) Compare(i, j int) Ordering { return PartialCompare(s[i], s[j]) }

// Swap exchanges s[i] and s[j].
func (s Slice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// SortSlice sorts data in place into ascending order.
//
// Float slices may contain NaN: NaN pairs are incomparable, trigger no
// swaps, and end up wherever the passes leave them, while all comparable
// pairs still finish correctly ordered.
func SortSlice[T Ordered](data []T) {
	Sort(Slice[T](data))
}

// SortSliceDescending sorts data in place into descending order.
func SortSliceDescending[T Ordered](data []T) {
	SortDescending(Slice[T](data))
}

// IsSortedSlice reports whether no adjacent comparable pair of data is in
// descending order.
func IsSortedSlice[T Ordered](data []T) bool {
	return IsSorted(Slice[T](data))
}
