package conformance

import (
	"errors"
	"strings"

	"github.com/tuannh982/set-conformance/utils/collections"
)

// ErrPassThru is raised by an operand before it yields anything.
var ErrPassThru = errors.New("pass thru")

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func checkPassThru() collections.Iterable[any] {
	return collections.Generator(func(yield func(any) bool) error {
		return ErrPassThru
	})
}

// setOf builds a set out of anything FromAny accepts, panicking on failure.
func setOf(src any) collections.Set[any] {
	it, err := collections.FromAny[any](src)
	must(err)
	s, err := collections.From(it)
	must(err)
	return s
}

type container struct {
	name  string
	build func(string) any
}

// containers produce the same characters through every operand kind.
var containers = []container{
	{"set", func(str string) any {
		return setOf(str)
	}},
	{"keys", func(str string) any {
		m := make(map[string]struct{})
		for _, r := range str {
			m[string(r)] = struct{}{}
		}
		return m
	}},
	{"string", func(str string) any {
		return str
	}},
	{"list", func(str string) any {
		arr := make([]any, 0, len(str))
		for _, r := range str {
			arr = append(arr, string(r))
		}
		return arr
	}},
	{"typed_list", func(str string) any {
		return strings.Split(str, "")
	}},
	{"generator", func(str string) any {
		return collections.Generator(func(yield func(any) bool) error {
			for _, r := range str {
				if !yield(string(r)) {
					return nil
				}
			}
			return nil
		})
	}},
	{"channel", func(str string) any {
		ch := make(chan string, len(str))
		for _, r := range str {
			ch <- string(r)
		}
		close(ch)
		return ch
	}},
}

func samples() []collections.Set[any] {
	return []collections.Set[any]{
		setOf([]any{}),
		setOf([]any{1, 2, 3}),
		setOf([]any{3, 4}),
		setOf([]any{1, "1", 2.5}),
		setOf("simsalabim"),
		setOf("madagascar"),
	}
}

type checker struct {
	err error
}

func (c *checker) check(err error) {
	if c.err == nil {
		c.err = err
	}
}

func Default() *Suite {
	suite := NewSuite()
	for _, scenario := range []Scenario{
		{"set_or", setOr},
		{"set_remove", setRemove},
		{"set_le", setLe},
		{"difference", difference},
		{"difference/pass_thru", differencePassThru},
		{"difference/unhashable", differenceUnhashable},
		{"difference/non_iterable", differenceNonIterable},
		{"difference/operand_kinds", differenceOperandKinds},
		{"difference/no_operands", differenceNoOperands},
		{"difference/chained", differenceChained},
		{"difference_update", differenceUpdate},
		{"difference_update/pass_thru", differenceUpdatePassThru},
		{"difference_update/unhashable", differenceUpdateUnhashable},
		{"difference_update/operand_kinds", differenceUpdateOperandKinds},
		{"difference_update/all_or_nothing", differenceUpdateAllOrNothing},
		{"union/commutative", unionCommutative},
		{"subset/property", subsetProperty},
		{"remove/size", removeSize},
	} {
		must(suite.Add(scenario))
	}
	return suite
}

func setOr() error {
	s1 := setOf([]any{1, 2, 3})
	s2 := setOf([]any{4, 5, 6})
	s3 := setOf([]any{1, 2, 4})
	s4 := setOf([]any{1, 2, 3})
	c := &checker{}

	union, err := s1.Union(s2)
	must(err)
	c.check(expectSet(union, setOf([]any{1, 2, 3, 4, 5, 6})))

	union, err = s1.Union(s3)
	must(err)
	c.check(expectSet(union, setOf([]any{1, 2, 3, 4})))

	union, err = s1.Union(s4)
	must(err)
	c.check(expectSet(union, setOf([]any{1, 2, 3})))
	return c.err
}

func setRemove() error {
	s := setOf([]any{1, 2, 3})
	c := &checker{}
	c.check(expectSet(s, setOf([]any{1, 2, 3})))
	must(s.Remove(3))
	c.check(expectSet(s, setOf([]any{1, 2})))
	return c.err
}

func setLe() error {
	return expect(setOf("a").IsSubset(setOf("abc")), "{a} is not a subset of {a, b, c}")
}

func difference() error {
	word := "simsalabim"
	otherword := "madagascar"
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	s := setOf(word)
	d := setOf(word)
	c := &checker{}

	i, err := collections.DifferenceOf(s, otherword)
	must(err)
	for _, r := range letters {
		ch := string(r)
		want := d.Contains(ch) && !strings.ContainsRune(otherword, r)
		c.check(expect(i.Contains(ch) == want, "membership of %q: got %t, want %t", ch, i.Contains(ch), want))
	}
	c.check(expectSet(s, setOf(word)))
	return c.err
}

func differencePassThru() error {
	s := setOf("simsalabim")
	_, err := s.Difference(checkPassThru())
	c := &checker{}
	c.check(expectErr(err, ErrPassThru))
	c.check(expectSet(s, setOf("simsalabim")))
	return c.err
}

func differenceUnhashable() error {
	_, err := collections.DifferenceOf(setOf("simsalabim"), []any{[]any{}})
	return expectKind(err, collections.ErrTypeMismatch)
}

func differenceNonIterable() error {
	_, err := collections.DifferenceOf(setOf("simsalabim"), 42)
	return expectKind(err, collections.ErrTypeMismatch)
}

func differenceOperandKinds() error {
	c := &checker{}
	diff := func(others ...any) collections.Set[any] {
		res, err := collections.DifferenceOf(setOf("abcba"), others...)
		must(err)
		return res
	}
	for _, k := range containers {
		c.check(expectSet(diff(k.build("cdc")), setOf("ab")))
		c.check(expectSet(diff(k.build("efgfe")), setOf("abc")))
		c.check(expectSet(diff(k.build("ccb")), setOf("a")))
		c.check(expectSet(diff(k.build("ef")), setOf("abc")))
		c.check(expectSet(diff(), setOf("abc")))
		c.check(expectSet(diff(k.build("a"), k.build("b")), setOf("c")))
		if c.err != nil {
			return mismatch("%s: %v", k.name, c.err)
		}
	}
	return nil
}

func differenceNoOperands() error {
	c := &checker{}
	for _, s := range samples() {
		cp, err := s.Difference()
		must(err)
		c.check(expectSet(cp, s))
		for _, v := range cp.Entries() {
			must(cp.Remove(v))
			break
		}
		c.check(expect(cp.Size() == 0 || s.Size() != cp.Size(), "copy of %s shares storage", s))
	}
	return c.err
}

func differenceChained() error {
	c := &checker{}
	arr := samples()
	for _, a := range arr {
		for _, b := range arr {
			for _, cc := range arr {
				all, err := a.Difference(b, cc)
				must(err)
				step, err := a.Difference(b)
				must(err)
				step, err = step.Difference(cc)
				must(err)
				c.check(expectSet(all, step))
			}
		}
	}
	return c.err
}

func differenceUpdate() error {
	word := "simsalabim"
	otherword := "madagascar"
	s := setOf(word)
	c := &checker{}

	c.check(expect(collections.DifferenceUpdateOf(s, otherword) == nil, "difference update failed"))
	for _, r := range word + otherword {
		ch := string(r)
		want := strings.ContainsRune(word, r) && !strings.ContainsRune(otherword, r)
		c.check(expect(s.Contains(ch) == want, "membership of %q: got %t, want %t", ch, s.Contains(ch), want))
	}
	return c.err
}

func differenceUpdatePassThru() error {
	s := setOf("simsalabim")
	c := &checker{}
	c.check(expectErr(s.DifferenceUpdate(checkPassThru()), ErrPassThru))
	c.check(expectSet(s, setOf("simsalabim")))
	return c.err
}

func differenceUpdateUnhashable() error {
	s := setOf("simsalabim")
	c := &checker{}
	c.check(expectKind(collections.DifferenceUpdateOf(s, []any{[]any{}}), collections.ErrTypeMismatch))
	c.check(expectKind(collections.DifferenceUpdateOf(s, 42), collections.ErrTypeMismatch))
	c.check(expectSet(s, setOf("simsalabim")))
	return c.err
}

func differenceUpdateOperandKinds() error {
	c := &checker{}
	update := func(start string, others ...any) collections.Set[any] {
		s := setOf(start)
		must(collections.DifferenceUpdateOf(s, others...))
		return s
	}
	for _, pq := range [][2]string{{"cdc", "ab"}, {"efgfe", "abc"}, {"ccb", "a"}, {"ef", "abc"}} {
		for _, k := range containers {
			c.check(expectSet(update("abcba", k.build(pq[0])), setOf(pq[1])))
			c.check(expectSet(update("abcdefghih"), setOf("abcdefghih")))
			c.check(expectSet(update("abcdefghih", k.build("aba")), setOf("cdefghih")))
			c.check(expectSet(update("abcdefghih", k.build("cdc"), k.build("aba")), setOf("efghih")))
			if c.err != nil {
				return mismatch("%s %s: %v", k.name, pq[0], c.err)
			}
		}
	}
	return nil
}

// A failing operand after a good one leaves the receiver as it was.
func differenceUpdateAllOrNothing() error {
	s := setOf("abcdef")
	failing := collections.Generator(func(yield func(any) bool) error {
		if !yield("c") {
			return nil
		}
		return ErrPassThru
	})
	c := &checker{}
	c.check(expectErr(collections.DifferenceUpdateOf(s, "ab", failing), ErrPassThru))
	c.check(expectSet(s, setOf("abcdef")))
	return c.err
}

func unionCommutative() error {
	c := &checker{}
	arr := samples()
	for _, a := range arr {
		for _, b := range arr {
			ab, err := a.Union(b)
			must(err)
			ba, err := b.Union(a)
			must(err)
			c.check(expectSet(ab, ba))
		}
	}
	return c.err
}

func subsetProperty() error {
	c := &checker{}
	arr := samples()
	arr = append(arr, setOf([]any{1}), setOf("sim"))
	for _, a := range arr {
		for _, b := range arr {
			want := true
			for _, v := range a.Entries() {
				if !b.Contains(v) {
					want = false
					break
				}
			}
			c.check(expect(a.IsSubset(b) == want, "%s <= %s: got %t, want %t", a, b, a.IsSubset(b), want))
		}
	}
	return c.err
}

func removeSize() error {
	c := &checker{}
	for _, s := range samples() {
		for _, v := range s.Entries() {
			cp := s.Clone()
			must(cp.Remove(v))
			c.check(expect(cp.Size() == s.Size()-1, "size after removing %v from %s is %d", v, s, cp.Size()))
			c.check(expect(!cp.Contains(v), "%v still in %s after removal", v, cp))
			c.check(expectKind(cp.Remove(v), collections.ErrMissingElement))
		}
	}
	return c.err
}
