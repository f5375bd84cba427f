package msg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/chanx/pkg/chanx"
)

func TestPairRoundTrip(t *testing.T) {
	ch := New2[string, int](chanx.WithCapacity(2))

	require.True(t, Send2(ch, "a", 1))
	require.True(t, Send2(ch, "b", 2))
	require.True(t, Send2(ch, "c", 3))
	assert.Equal(t, 1, ch.DroppedCount())

	s, n, ok := Recv2(ch)
	require.True(t, ok)
	assert.Equal(t, "b", s)
	assert.Equal(t, 2, n)

	s, n, ok = TryRecv2(ch)
	require.True(t, ok)
	assert.Equal(t, "c", s)
	assert.Equal(t, 3, n)

	s, n, ok = TryRecv2(ch)
	assert.False(t, ok)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, n)
}

func TestTripleAfterSeal(t *testing.T) {
	ch := New3[int, string, bool](chanx.WithCapacity(4))
	require.True(t, SendWait3(ch, 1, "x", true))
	ch.Seal()
	assert.False(t, Send3(ch, 2, "y", false))

	a, b, c, ok := Recv3(ch)
	require.True(t, ok)
	assert.Equal(t, 1, a)
	assert.Equal(t, "x", b)
	assert.True(t, c)

	_, _, _, ok = Recv3(ch)
	assert.False(t, ok)
	assert.True(t, ch.IsClosed())

	_, _, _, ok = TryRecv3(ch)
	assert.False(t, ok)
}

func TestQuadUnpack(t *testing.T) {
	q := Of4(1, "two", 3.0, []byte("four"))
	a, b, c, d := q.Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.Equal(t, 3.0, c)
	assert.Equal(t, []byte("four"), d)

	p1, p2 := Of2("k", 9).Unpack()
	assert.Equal(t, "k", p1)
	assert.Equal(t, 9, p2)

	t1, t2, t3 := Of3(1, 2, 3).Unpack()
	assert.Equal(t, []int{1, 2, 3}, []int{t1, t2, t3})
}

func TestQuadChannel(t *testing.T) {
	ch := New4[int, int, int, int](chanx.Unbounded())
	require.True(t, Send4(ch, 1, 2, 3, 4))
	require.True(t, SendWait4(ch, 5, 6, 7, 8))

	a, b, c, d, ok := Recv4(ch)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{a, b, c, d})

	a, b, c, d, ok = TryRecv4(ch)
	require.True(t, ok)
	assert.Equal(t, []int{5, 6, 7, 8}, []int{a, b, c, d})

	ch.Close()
	_, _, _, _, ok = Recv4(ch)
	assert.False(t, ok)
}

// Fields sent together must arrive together, whatever the interleaving.
func TestTupleFieldsStayTogether(t *testing.T) {
	t.Parallel()

	const (
		producers   = 4
		perProducer = 250
	)
	ch := New2[int, int](chanx.WithCapacity(3))

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := p*perProducer + i
				SendWait2(ch, v, -v)
			}
		}(p)
	}

	go func() {
		wg.Wait()
		ch.Seal()
	}()

	count := 0
	for {
		a, b, ok := Recv2(ch)
		if !ok {
			break
		}
		require.Equal(t, -a, b)
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}
