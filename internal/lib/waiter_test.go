package lib_test

import (
	"testing"

	"github.com/quintans/go-trafficlight/internal/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaiterPokeReleasesAllHolders(t *testing.T) {
	w := lib.NewWaiter()
	a := w.Wait()
	b := w.Wait()
	require.Equal(t, a, b)

	select {
	case <-a:
		t.Fatal("channel closed before poke")
	default:
	}

	w.Poke()
	_, okA := <-a
	_, okB := <-b
	assert.False(t, okA)
	assert.False(t, okB)
	assert.Equal(t, uint64(1), w.Pokes())
}

func TestWaiterFreshChannelAfterPoke(t *testing.T) {
	w := lib.NewWaiter()
	first := w.Wait()
	w.Poke()

	second := w.Wait()
	assert.NotEqual(t, first, second)
	select {
	case <-second:
		t.Fatal("new channel must wait for the next poke")
	default:
	}
}

func TestWaiterPokeWithoutHolders(t *testing.T) {
	w := lib.NewWaiter()
	w.Poke()
	w.Poke()
	assert.Equal(t, uint64(2), w.Pokes())

	ch := w.Wait()
	select {
	case <-ch:
		t.Fatal("earlier pokes must not close a later channel")
	default:
	}
}
