package collections

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
)

// Iterable enumerates values. Iterate calls yield for each value until
// yield returns false or the source runs out. A non-nil error aborts the
// enumeration and must be handed back to the caller as is.
type Iterable[V any] interface {
	Iterate(yield func(V) bool) error
}

type IterableFunc[V any] func(yield func(V) bool) error

func (f IterableFunc[V]) Iterate(yield func(V) bool) error {
	if f == nil {
		return notIterable(f)
	}
	return f(yield)
}

func Slice[V any](values []V) Iterable[V] {
	return IterableFunc[V](func(yield func(V) bool) error {
		for _, v := range values {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

func Keys[K comparable, X any](m map[K]X) Iterable[K] {
	return Slice(maps.Keys(m))
}

func Runes(str string) Iterable[rune] {
	return IterableFunc[rune](func(yield func(rune) bool) error {
		for _, r := range str {
			if !yield(r) {
				return nil
			}
		}
		return nil
	})
}

// Chars yields every character of str as a one character string.
func Chars(str string) Iterable[string] {
	return IterableFunc[string](func(yield func(string) bool) error {
		for _, r := range str {
			if !yield(string(r)) {
				return nil
			}
		}
		return nil
	})
}

func Chan[V any](ch <-chan V) Iterable[V] {
	return IterableFunc[V](func(yield func(V) bool) error {
		for v := range ch {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

type generator[V any] struct {
	fn       func(yield func(V) bool) error
	consumed bool
}

// Generator wraps fn into a one-shot source. The first Iterate runs fn,
// later calls yield nothing.
func Generator[V any](fn func(yield func(V) bool) error) Iterable[V] {
	return &generator[V]{fn: fn}
}

func (g *generator[V]) Iterate(yield func(V) bool) error {
	if g == nil || g.fn == nil {
		return notIterable(g)
	}
	if g.consumed {
		return nil
	}
	g.consumed = true
	return g.fn(yield)
}

func Collect[V any](it Iterable[V]) ([]V, error) {
	if isNil(it) {
		return nil, notIterable(it)
	}
	arr := make([]V, 0)
	err := it.Iterate(func(v V) bool {
		arr = append(arr, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func notIterable(x any) error {
	return fmt.Errorf("%w: %T is not iterable", ErrTypeMismatch, x)
}

var (
	boolType  = reflect.TypeOf(true)
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// isNil reports a nil operand, including typed nil pointers, funcs and
// channels hidden in an interface. Nil slices and maps are empty operands.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// FromAny adapts x into an Iterable of V. Accepted are Iterable[V], []V,
// strings (per character), and Iterable[W], slices, arrays, maps (keys),
// receive channels and Entries() providers whose elements are assignable
// to V.
func FromAny[V any](x any) (Iterable[V], error) {
	if isNil(x) {
		return nil, notIterable(x)
	}
	switch src := x.(type) {
	case Iterable[V]:
		return src, nil
	case []V:
		return Slice(src), nil
	case string:
		return fromString[V](src)
	}
	target := reflect.TypeOf((*V)(nil)).Elem()
	rv := reflect.ValueOf(x)
	if m := rv.MethodByName("Iterate"); m.IsValid() {
		if it, ok := fromIterate[V](m, target); ok {
			return it, nil
		}
	}
	if m := rv.MethodByName("Entries"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Slice {
			return fromIndexed[V](x, mt.Out(0).Elem(), target, func() reflect.Value {
				return m.Call(nil)[0]
			})
		}
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromIndexed[V](x, rv.Type().Elem(), target, func() reflect.Value {
			return rv
		})
	case reflect.Map:
		if !rv.Type().Key().AssignableTo(target) {
			return nil, notIterable(x)
		}
		return IterableFunc[V](func(yield func(V) bool) error {
			iter := rv.MapRange()
			for iter.Next() {
				if !yield(valueOf[V](iter.Key())) {
					return nil
				}
			}
			return nil
		}), nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir == 0 || !rv.Type().Elem().AssignableTo(target) {
			return nil, notIterable(x)
		}
		return IterableFunc[V](func(yield func(V) bool) error {
			for {
				e, ok := rv.Recv()
				if !ok {
					return nil
				}
				if !yield(valueOf[V](e)) {
					return nil
				}
			}
		}), nil
	}
	return nil, notIterable(x)
}

// fromIterate adapts an Iterate(func(W) bool) error method, converting
// every W through a reflected yield.
func fromIterate[V any](m reflect.Value, target reflect.Type) (Iterable[V], bool) {
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != errorType {
		return nil, false
	}
	yt := mt.In(0)
	if yt.Kind() != reflect.Func || yt.NumIn() != 1 || yt.NumOut() != 1 ||
		yt.Out(0) != boolType || !yt.In(0).AssignableTo(target) {
		return nil, false
	}
	return IterableFunc[V](func(yield func(V) bool) error {
		fn := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(valueOf[V](args[0])))}
		})
		out := m.Call([]reflect.Value{fn})[0]
		if out.IsNil() {
			return nil
		}
		return out.Interface().(error)
	}), true
}

func fromIndexed[V any](x any, elem, target reflect.Type, values func() reflect.Value) (Iterable[V], error) {
	if !elem.AssignableTo(target) {
		return nil, notIterable(x)
	}
	return IterableFunc[V](func(yield func(V) bool) error {
		rv := values()
		for i := 0; i < rv.Len(); i++ {
			if !yield(valueOf[V](rv.Index(i))) {
				return nil
			}
		}
		return nil
	}), nil
}

func fromString[V any](str string) (Iterable[V], error) {
	target := reflect.TypeOf((*V)(nil)).Elem()
	strType := reflect.TypeOf("")
	switch {
	case target.Kind() == reflect.String,
		target.Kind() == reflect.Interface && strType.Implements(target):
		return IterableFunc[V](func(yield func(V) bool) error {
			for _, r := range str {
				if !yield(valueOf[V](reflect.ValueOf(string(r)).Convert(target))) {
					return nil
				}
			}
			return nil
		}), nil
	case target.Kind() == reflect.Int32:
		return IterableFunc[V](func(yield func(V) bool) error {
			for _, r := range str {
				if !yield(valueOf[V](reflect.ValueOf(r).Convert(target))) {
					return nil
				}
			}
			return nil
		}), nil
	}
	return nil, notIterable(str)
}

func valueOf[V any](rv reflect.Value) V {
	var v V
	reflect.ValueOf(&v).Elem().Set(rv)
	return v
}

func adaptAll[V any](others []any) ([]Iterable[V], error) {
	arr := make([]Iterable[V], 0, len(others))
	for _, x := range others {
		it, err := FromAny[V](x)
		if err != nil {
			return nil, err
		}
		arr = append(arr, it)
	}
	return arr, nil
}

func UnionOf[V any](s Set[V], others ...any) (Set[V], error) {
	its, err := adaptAll[V](others)
	if err != nil {
		return nil, err
	}
	return s.Union(its...)
}

func DifferenceOf[V any](s Set[V], others ...any) (Set[V], error) {
	its, err := adaptAll[V](others)
	if err != nil {
		return nil, err
	}
	return s.Difference(its...)
}

func DifferenceUpdateOf[V any](s Set[V], others ...any) error {
	its, err := adaptAll[V](others)
	if err != nil {
		return err
	}
	return s.DifferenceUpdate(its...)
}
