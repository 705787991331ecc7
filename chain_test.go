package forward_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	forward "github.com/brynbellomy/go-forward"
)

func TestPipe(t *testing.T) {
	t.Run("where", func(t *testing.T) {
		v := []int{15, 21}
		en := forward.Pipe(forward.From(v), forward.Where(func(i int) bool { return i < 20 }))

		require.Equal(t, []int{15}, forward.ToSlice(en))
	})

	t.Run("where then select", func(t *testing.T) {
		v := []int{15, 21}
		result := forward.ToSlice(forward.Pipe2(
			forward.From(v),
			forward.Where(func(i int) bool { return i < 20 }),
			forward.Select(func(i int) int { return i + 100 }),
		))

		require.Equal(t, []int{115}, result)
	})

	t.Run("strings to lengths", func(t *testing.T) {
		words := []string{"cat", "bunny", "doggy", "horsey"}
		result := forward.ToSlice(forward.Pipe2(
			forward.From(words),
			forward.Where(func(s string) bool { return s[0] < 'h' }),
			forward.Select(func(s string) int { return len(s) }),
		))

		require.Equal(t, []int{3, 5, 5}, result)
	})

	t.Run("three and four stages", func(t *testing.T) {
		three := forward.Pipe3(
			forward.Range(0, 100),
			forward.Where(func(i int) bool { return i%2 == 0 }),
			forward.Skip[int](1),
			forward.Take[int](3),
		)
		require.Equal(t, []int{2, 4, 6}, forward.ToSlice(three))

		four := forward.Pipe4(
			forward.Range(0, 100),
			forward.Where(func(i int) bool { return i%2 == 0 }),
			forward.Skip[int](1),
			forward.Take[int](3),
			forward.Select(func(i int) float64 { return float64(i) / 4 }),
		)
		require.Equal(t, []float64{0.5, 1, 1.5}, forward.ToSlice(four))
	})

	t.Run("nil stage panics", func(t *testing.T) {
		require.PanicsWithValue(t, "invariant violation: nil stage in pipeline", func() {
			forward.Pipe[int, int](forward.Range(0, 1), nil)
		})
	})
}

func TestCompose(t *testing.T) {
	smallPlusHundred := forward.Compose(
		forward.Where(func(i int) bool { return i < 20 }),
		forward.Select(func(i int) int { return i + 100 }),
	)

	require.Equal(t, []int{115}, forward.ToSlice(forward.Pipe(forward.Of(15, 21), smallPlusHundred)))
	require.Equal(t, []int{100, 101}, forward.ToSlice(forward.Pipe(forward.Range(0, 2), smallPlusHundred)))
}

func TestLaziness(t *testing.T) {
	predCalls, fnCalls := 0, 0
	pred := func(i int) bool {
		predCalls++
		return i%3 == 0
	}
	fn := func(i int) int {
		fnCalls++
		return i * 10
	}

	seq := forward.Pipe3(
		forward.Range(0, 1_000_000),
		forward.Where(pred),
		forward.Select(fn),
		forward.Take[int](2),
	)
	c := seq.Cursor()
	require.Zero(t, predCalls)
	require.Zero(t, fnCalls)

	require.Equal(t, 0, c.Pull().MustGet())
	require.Equal(t, 1, predCalls)
	require.Equal(t, 1, fnCalls)

	require.Equal(t, 30, c.Pull().MustGet())
	require.Equal(t, 4, predCalls)
	require.Equal(t, 2, fnCalls)

	require.False(t, c.Pull().IsPresent())
	require.Equal(t, 4, predCalls)
}

func TestQuery(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	people := []person{
		{"ada", 36}, {"bo", 12}, {"cy", 51}, {"di", 17}, {"ed", 29}, {"flo", 44},
	}
	isAdult := func(p person) bool { return p.age >= 18 }

	adults := forward.Query[person](forward.From(people)).Where(isAdult)

	t.Run("paging", func(t *testing.T) {
		page := adults.Skip(1).Take(2).ToSlice()
		require.Equal(t, []person{{"cy", 51}, {"ed", 29}}, page)
	})

	t.Run("terminals", func(t *testing.T) {
		require.Equal(t, 4, adults.Count())
		require.False(t, adults.IsEmpty())
		require.True(t, adults.Any(func(p person) bool { return p.age > 50 }))
		require.True(t, adults.Every(isAdult))

		first, err := adults.First()
		require.NoError(t, err)
		require.Equal(t, "ada", first.name)
		require.Equal(t, "ada", adults.FirstOpt().MustGet().name)
	})

	t.Run("then", func(t *testing.T) {
		names := []string{}
		adults.Then(forward.Take[person](1)).ForEach(func(p person) { names = append(names, p.name) })
		require.Equal(t, []string{"ada"}, names)
	})

	t.Run("range over all", func(t *testing.T) {
		var names []string
		for p := range adults.All() {
			names = append(names, p.name)
		}
		require.Equal(t, []string{"ada", "cy", "ed", "flo"}, names)
	})

	t.Run("select out of a query", func(t *testing.T) {
		ages := forward.ToSlice(forward.NewSelect[person](adults, func(p person) int { return p.age }))
		require.Equal(t, []int{36, 51, 29, 44}, ages)
	})

	t.Run("length hint survives", func(t *testing.T) {
		require.Equal(t, len(people), forward.Query[person](forward.From(people)).Len())
	})
}

func TestSharedPipelineAcrossGoroutines(t *testing.T) {
	xs := forward.ToSlice(forward.Range(0, 500))
	pipeline := forward.Pipe3(
		forward.From(xs),
		forward.Where(func(n int) bool { return n%2 == 0 }),
		forward.Select(func(n int) int { return n * 3 }),
		forward.Skip[int](2),
	)

	var expected []int
	for n := 4; n < 500; n += 2 {
		expected = append(expected, n*3)
	}

	const workers = 16
	results := make([][]int, workers)
	counts := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = forward.ToSlice(pipeline)
			} else {
				c := pipeline.Cursor()
				for v, ok := c.Pull().Get(); ok; v, ok = c.Pull().Get() {
					results[i] = append(results[i], v)
				}
			}
			counts[i] = forward.Count(pipeline)
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.Equal(t, expected, results[i], "worker %d", i)
		require.Equal(t, len(expected), counts[i], "worker %d", i)
	}
}
