package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorIsOneShot(t *testing.T) {
	g := Generator(func(yield func(int) bool) error {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return nil
			}
		}
		return nil
	})
	arr, err := Collect(g)
	require.Nil(t, err)
	require.Equal(t, []int{0, 1, 2}, arr)
	arr, err = Collect(g)
	require.Nil(t, err)
	require.Equal(t, 0, len(arr))
}

func TestGeneratorErrorBeforeFirstValue(t *testing.T) {
	arr, err := Collect(passThru[int]())
	require.Equal(t, errPassThru, err)
	require.Nil(t, arr)
}

func TestRunesAndChars(t *testing.T) {
	runes, err := Collect(Runes("héllo"))
	require.Nil(t, err)
	require.Equal(t, []rune{'h', 'é', 'l', 'l', 'o'}, runes)
	strs, err := Collect(Chars("hé"))
	require.Nil(t, err)
	require.Equal(t, []string{"h", "é"}, strs)
}

func TestKeys(t *testing.T) {
	arr, err := Collect(Keys(map[string]int{"a": 1, "b": 2}))
	require.Nil(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, arr)
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		name     string
		src      any
		expected []any
	}{
		{"slice", []any{1, "a"}, []any{1, "a"}},
		{"typed slice", []int{1, 2}, []any{1, 2}},
		{"array", [2]string{"x", "y"}, []any{"x", "y"}},
		{"string", "ab", []any{"a", "b"}},
		{"map", map[string]bool{"k": true}, []any{"k"}},
		{"set", New(7, 8), []any{7, 8}},
		{"nil element", []any{nil}, []any{nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := FromAny[any](tc.src)
			require.Nil(t, err)
			arr, err := Collect(it)
			require.Nil(t, err)
			require.ElementsMatch(t, tc.expected, arr)
		})
	}
}

func TestFromAnyTyped(t *testing.T) {
	it, err := FromAny[rune]("abc")
	require.Nil(t, err)
	arr, err := Collect(it)
	require.Nil(t, err)
	require.Equal(t, []rune{'a', 'b', 'c'}, arr)

	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)
	intIt, err := FromAny[int](ch)
	require.Nil(t, err)
	ints, err := Collect(intIt)
	require.Nil(t, err)
	require.Equal(t, []int{1, 2}, ints)

	_, err = FromAny[int]([]string{"a"})
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = FromAny[float64]("abc")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFromAnyRejectsNonIterables(t *testing.T) {
	for _, x := range []any{nil, 42, 3.5, struct{}{}, true} {
		_, err := FromAny[any](x)
		require.ErrorIs(t, err, ErrTypeMismatch, x)
	}
}

func TestDynamicOperations(t *testing.T) {
	s := New[any]("a", "b", "c")

	res, err := DifferenceOf(s, "cdc", []string{"a"})
	require.Nil(t, err)
	require.True(t, res.Equals(New[any]("b")))

	_, err = DifferenceOf(s, 42)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = DifferenceOf(s, []any{[]any{}})
	require.ErrorIs(t, err, ErrTypeMismatch)

	res, err = UnionOf(s, map[string]int{"z": 0})
	require.Nil(t, err)
	require.Equal(t, 4, res.Size())

	require.ErrorIs(t, DifferenceUpdateOf(s, 1), ErrTypeMismatch)
	require.Equal(t, 3, s.Size())
	require.Nil(t, DifferenceUpdateOf(s, "ab"))
	require.True(t, s.Equals(New[any]("c")))
}

func TestFromAnyAcceptsAssignableIterables(t *testing.T) {
	s := New[any]("a", "b")

	res, err := DifferenceOf(s, Chars("a"))
	require.Nil(t, err)
	require.True(t, res.Equals(New[any]("b")))

	res, err = DifferenceOf(s, Generator(func(yield func(string) bool) error {
		yield("b")
		return nil
	}))
	require.Nil(t, err)
	require.True(t, res.Equals(New[any]("a")))

	res, err = UnionOf(s, Runes("z"), New("y"))
	require.Nil(t, err)
	require.True(t, res.Equals(New[any]("a", "b", 'z', "y")))

	_, err = DifferenceOf(s, failAfter("a"))
	require.Equal(t, errPassThru, err)

	_, err = FromAny[string](Slice([]int{1}))
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTypedNilOperands(t *testing.T) {
	var f IterableFunc[int]
	var g *generator[int]
	var s *hashSet[int, int]

	_, err := New(1, 2).Difference(f)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.ErrorIs(t, New(1, 2).DifferenceUpdate(g), ErrTypeMismatch)
	_, err = New(1, 2).Union(s)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = Collect[int](f)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.ErrorIs(t, f.Iterate(func(int) bool { return true }), ErrTypeMismatch)
	require.ErrorIs(t, g.Iterate(func(int) bool { return true }), ErrTypeMismatch)
	_, err = FromAny[any](g)
	require.ErrorIs(t, err, ErrTypeMismatch)

	arr, err := Collect(Slice[int](nil))
	require.Nil(t, err)
	require.Equal(t, 0, len(arr))
}
