package collections

// Set is a mutable group of distinct values. Operations that take
// Iterable operands consume each operand fully and return any enumeration
// error unchanged.
//
// The *Update variants consume every operand before changing the receiver,
// so a failure in any operand, even after earlier ones succeeded, leaves
// the receiver as it was.
type Set[V any] interface {
	Iterable[V]
	// Contains reports false for an unhashable v. Add and Remove return
	// ErrTypeMismatch for the same value.
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Discard(v V) bool
	Clear()
	Size() int
	Entries() []V
	Clone() Set[V]
	Equals(other Set[V]) bool
	IsSubset(other Set[V]) bool
	IsProperSubset(other Set[V]) bool
	IsSuperset(other Set[V]) bool
	IsDisjoint(other Set[V]) bool
	Union(others ...Iterable[V]) (Set[V], error)
	Update(others ...Iterable[V]) error
	Difference(others ...Iterable[V]) (Set[V], error)
	DifferenceUpdate(others ...Iterable[V]) error
	Intersection(others ...Iterable[V]) (Set[V], error)
	IntersectionUpdate(others ...Iterable[V]) error
	SymmetricDifference(other Iterable[V]) (Set[V], error)
	SymmetricDifferenceUpdate(other Iterable[V]) error
	String() string
}
