package bcoll_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bcoll "github.com/brynbellomy/go-forward/coll"
)

func TestKeySortedMapInsertAndGet(t *testing.T) {
	sm := bcoll.NewKeySortedMap[int, string]()

	require.True(t, sm.Insert(3, "three"))
	require.True(t, sm.Insert(1, "one"))
	require.True(t, sm.Insert(4, "four"))
	require.True(t, sm.Insert(-1, "negative one"))

	tests := []struct {
		key      int
		expected string
		exists   bool
	}{
		{1, "one", true},
		{3, "three", true},
		{4, "four", true},
		{-1, "negative one", true},
		{2, "", false},
		{0, "", false},
	}

	for _, test := range tests {
		val, ok := sm.Get(test.key)
		require.Equal(t, test.exists, ok, "key %d", test.key)
		require.Equal(t, test.expected, val, "key %d", test.key)
	}

	t.Run("replacing a value does not grow the map", func(t *testing.T) {
		require.False(t, sm.Insert(3, "THREE"))
		require.Equal(t, 4, sm.Len())

		val, ok := sm.Get(3)
		require.True(t, ok)
		require.Equal(t, "THREE", val)
	})

	t.Run("clear", func(t *testing.T) {
		sm.Clear()
		require.Equal(t, 0, sm.Len())
		_, ok := sm.Get(1)
		require.False(t, ok)
	})
}

func TestKeySortedMapIterator(t *testing.T) {
	sm := bcoll.NewKeySortedMap[int, string]()

	var gotKeys []int
	for k := range sm.Iter() {
		gotKeys = append(gotKeys, k)
	}
	require.Empty(t, gotKeys)

	sm.Insert(-5, "neg five")
	sm.Insert(0, "zero")
	sm.Insert(5, "five")
	sm.Insert(10, "ten")
	sm.Insert(-10, "neg ten")
	sm.Insert(-2, "neg two")
	sm.Insert(2, "two")
	sm.Insert(7, "seven")
	sm.Insert(15, "fifteen")

	var gotValues []string
	for k, v := range sm.Iter() {
		gotKeys = append(gotKeys, k)
		gotValues = append(gotValues, v)
	}

	require.Equal(t, []int{-10, -5, -2, 0, 2, 5, 7, 10, 15}, gotKeys)
	require.Equal(t, []string{"neg ten", "neg five", "neg two", "zero", "two", "five", "seven", "ten", "fifteen"}, gotValues)
	require.Equal(t, gotKeys, sm.Keys())

	var reversed []int
	for k := range sm.ReverseIter() {
		reversed = append(reversed, k)
	}
	require.Equal(t, []int{15, 10, 7, 5, 2, 0, -2, -5, -10}, reversed)

	t.Run("early termination", func(t *testing.T) {
		var firstThree []int
		for k := range sm.Iter() {
			firstThree = append(firstThree, k)
			if len(firstThree) == 3 {
				break
			}
		}
		require.Equal(t, []int{-10, -5, -2}, firstThree)
	})
}

func TestSortedSet(t *testing.T) {
	ss := bcoll.NewSortedSet[string]()
	for _, s := range []string{"horsey", "cat", "bunny", "cat", "doggy"} {
		ss.Insert(s)
	}

	require.Equal(t, 4, ss.Len())
	require.True(t, ss.Has("cat"))
	require.False(t, ss.Has("mouse"))
	require.Equal(t, []string{"bunny", "cat", "doggy", "horsey"}, ss.Slice())
	require.Equal(t, "[bunny cat doggy horsey]", ss.String())

	var reversed []string
	for s := range ss.ReverseIter() {
		reversed = append(reversed, s)
	}
	require.Equal(t, []string{"horsey", "doggy", "cat", "bunny"}, reversed)

	ss.Clear()
	require.Equal(t, 0, ss.Len())
	require.Empty(t, ss.Slice())
}

func TestInsertionOrderedSet(t *testing.T) {
	s := bcoll.NewInsertionOrderedSet[int]()

	require.True(t, s.Add(3))
	require.True(t, s.Add(1))
	require.False(t, s.Add(3))
	require.True(t, s.Add(2))
	require.False(t, s.Add(1))

	require.Equal(t, 3, s.Size())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
	require.Equal(t, []int{3, 1, 2}, s.Elements())
	require.Equal(t, "[3, 1, 2]", s.String())

	t.Run("elements is a copy", func(t *testing.T) {
		elems := s.Elements()
		elems[0] = 99
		require.Equal(t, []int{3, 1, 2}, s.Elements())
	})
}
