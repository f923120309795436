package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePool_Get(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		p := NewSlicePool[int32](0)
		s := p.Get(100)
		defer p.Put(s)

		require.Len(t, s, 100)
		require.GreaterOrEqual(t, cap(s), 100)
	})

	t.Run("returned slice is zeroed after reuse", func(t *testing.T) {
		p := NewSlicePool[[]byte](0)
		s := p.Get(8)
		for i := range s {
			s[i] = []byte{byte(i)}
		}
		p.Put(s)

		s2 := p.Get(8)
		defer p.Put(s2)
		for i := range s2 {
			require.Nil(t, s2[i], "slot %d should be cleared", i)
		}
	})

	t.Run("allocates when capacity insufficient", func(t *testing.T) {
		p := NewSlicePool[int](0)
		p.Put(p.Get(10))

		s := p.Get(1000)
		defer p.Put(s)
		require.Len(t, s, 1000)
	})

	t.Run("put nil is ignored", func(t *testing.T) {
		p := NewSlicePool[int](0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized slices are not retained", func(t *testing.T) {
		p := NewSlicePool[byte](16)
		big := p.Get(64)
		big[0] = 0xFF
		p.Put(big)

		s := p.Get(64)
		require.Equal(t, byte(0), s[0])
	})
}

func TestSlicePool_Concurrency(t *testing.T) {
	p := NewSlicePool[uint16](0)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s := p.Get(64 + i)
				for j := range s {
					require.Equal(t, uint16(0), s[j])
					s[j] = uint16(id)
				}
				p.Put(s)
			}
		}(g)
	}

	wg.Wait()
}
