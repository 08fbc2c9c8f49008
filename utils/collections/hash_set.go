package collections

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

func Identity[V comparable](v V) V {
	return v
}

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return newHashSet(f)
}

// NewHashSetFrom builds a set holding every value of sources.
func NewHashSetFrom[R comparable, V any](f HashSetHashFunc[R, V], sources ...Iterable[V]) (Set[V], error) {
	s := newHashSet(f)
	for _, src := range sources {
		if err := s.absorb(s.entries, src); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// New returns a set of values. It panics if a value is unhashable, which
// can only happen when V is an interface type.
func New[V comparable](values ...V) Set[V] {
	s := newHashSet(Identity[V])
	for _, v := range values {
		if _, err := s.put(v); err != nil {
			panic(err)
		}
	}
	return s
}

func From[V comparable](sources ...Iterable[V]) (Set[V], error) {
	return NewHashSetFrom(Identity[V], sources...)
}

func Sorted[V constraints.Ordered](s Set[V]) []V {
	arr := s.Entries()
	slices.Sort(arr)
	return arr
}

func newHashSet[R comparable, V any](f HashSetHashFunc[R, V]) *hashSet[R, V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

// lookup hashes v and reports whether it is a member. A hash key whose
// dynamic type is not comparable gives ErrTypeMismatch. Panics raised by
// the hash function itself are left alone.
func (s *hashSet[R, V]) lookup(v V) (hash R, found bool, err error) {
	hash = s.hashFunc(v)
	found, err = s.has(hash, v)
	return hash, found, err
}

func (s *hashSet[R, V]) has(hash R, v V) (found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "unhashable type") {
				err = fmt.Errorf("%w: unhashable element %T", ErrTypeMismatch, v)
				return
			}
			panic(r)
		}
	}()
	_, found = s.entries[hash]
	return found, nil
}

func (s *hashSet[R, V]) put(v V) (bool, error) {
	hash, found, err := s.lookup(v)
	if err != nil || found {
		return false, err
	}
	s.entries[hash] = v
	return true, nil
}

// absorb enumerates it into dst, keyed by the receiver's hash function.
func (s *hashSet[R, V]) absorb(dst map[R]V, it Iterable[V]) error {
	if isNil(it) {
		return notIterable(it)
	}
	var hashErr error
	err := it.Iterate(func(v V) bool {
		hash, _, err := s.lookup(v)
		if err != nil {
			hashErr = err
			return false
		}
		dst[hash] = v
		return true
	})
	if hashErr != nil {
		return hashErr
	}
	return err
}

func (s *hashSet[R, V]) gather(others []Iterable[V]) (map[R]V, error) {
	m := make(map[R]V)
	for _, other := range others {
		if err := s.absorb(m, other); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (s *hashSet[R, V]) derive(entries map[R]V) *hashSet[R, V] {
	return &hashSet[R, V]{
		entries:  entries,
		hashFunc: s.hashFunc,
	}
}

func (s *hashSet[R, V]) Iterate(yield func(V) bool) error {
	for _, v := range s.Entries() {
		if !yield(v) {
			return nil
		}
	}
	return nil
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, found, err := s.lookup(v)
	return err == nil && found
}

func (s *hashSet[R, V]) Add(v V) error {
	added, err := s.put(v)
	if err != nil {
		return err
	}
	if !added {
		return ErrElementExists
	}
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash, found, err := s.lookup(v)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %v", ErrMissingElement, v)
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Discard(v V) bool {
	return s.Remove(v) == nil
}

func (s *hashSet[R, V]) Clear() {
	s.entries = make(map[R]V)
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	return maps.Values(s.entries)
}

func (s *hashSet[R, V]) Clone() Set[V] {
	return s.derive(maps.Clone(s.entries))
}

func (s *hashSet[R, V]) Equals(other Set[V]) bool {
	if other == nil {
		return s.Size() == 0
	}
	return s.Size() == other.Size() && s.IsSubset(other)
}

func (s *hashSet[R, V]) IsSubset(other Set[V]) bool {
	if other == nil {
		return s.Size() == 0
	}
	if s.Size() > other.Size() {
		return false
	}
	for _, v := range s.entries {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *hashSet[R, V]) IsProperSubset(other Set[V]) bool {
	return other != nil && s.Size() < other.Size() && s.IsSubset(other)
}

func (s *hashSet[R, V]) IsSuperset(other Set[V]) bool {
	if other == nil {
		return true
	}
	for _, v := range other.Entries() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

func (s *hashSet[R, V]) IsDisjoint(other Set[V]) bool {
	if other == nil {
		return true
	}
	for _, v := range s.entries {
		if other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *hashSet[R, V]) union(others []Iterable[V]) (*hashSet[R, V], error) {
	res := s.derive(maps.Clone(s.entries))
	for _, other := range others {
		if err := s.absorb(res.entries, other); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *hashSet[R, V]) Union(others ...Iterable[V]) (Set[V], error) {
	res, err := s.union(others)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *hashSet[R, V]) Update(others ...Iterable[V]) error {
	res, err := s.union(others)
	if err != nil {
		return err
	}
	s.entries = res.entries
	return nil
}

func (s *hashSet[R, V]) Difference(others ...Iterable[V]) (Set[V], error) {
	drop, err := s.gather(others)
	if err != nil {
		return nil, err
	}
	entries := make(map[R]V, len(s.entries))
	for hash, v := range s.entries {
		if _, found := drop[hash]; !found {
			entries[hash] = v
		}
	}
	return s.derive(entries), nil
}

func (s *hashSet[R, V]) DifferenceUpdate(others ...Iterable[V]) error {
	drop, err := s.gather(others)
	if err != nil {
		return err
	}
	for hash := range drop {
		delete(s.entries, hash)
	}
	return nil
}

func (s *hashSet[R, V]) intersection(others []Iterable[V]) (*hashSet[R, V], error) {
	res := s.derive(maps.Clone(s.entries))
	for _, other := range others {
		seen := make(map[R]V)
		if err := s.absorb(seen, other); err != nil {
			return nil, err
		}
		for hash := range res.entries {
			if _, found := seen[hash]; !found {
				delete(res.entries, hash)
			}
		}
	}
	return res, nil
}

func (s *hashSet[R, V]) Intersection(others ...Iterable[V]) (Set[V], error) {
	res, err := s.intersection(others)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *hashSet[R, V]) IntersectionUpdate(others ...Iterable[V]) error {
	res, err := s.intersection(others)
	if err != nil {
		return err
	}
	s.entries = res.entries
	return nil
}

func (s *hashSet[R, V]) symmetricDifference(other Iterable[V]) (*hashSet[R, V], error) {
	m := make(map[R]V)
	if err := s.absorb(m, other); err != nil {
		return nil, err
	}
	res := s.derive(maps.Clone(s.entries))
	for hash, v := range m {
		if _, found := res.entries[hash]; found {
			delete(res.entries, hash)
		} else {
			res.entries[hash] = v
		}
	}
	return res, nil
}

func (s *hashSet[R, V]) SymmetricDifference(other Iterable[V]) (Set[V], error) {
	res, err := s.symmetricDifference(other)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *hashSet[R, V]) SymmetricDifferenceUpdate(other Iterable[V]) error {
	res, err := s.symmetricDifference(other)
	if err != nil {
		return err
	}
	s.entries = res.entries
	return nil
}

func (s *hashSet[R, V]) String() string {
	arr := make([]string, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, fmt.Sprint(v))
	}
	slices.Sort(arr)
	return "{" + strings.Join(arr, ", ") + "}"
}
