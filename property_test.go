// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/capture"
)

const propertyN = 1000

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// TestPropertyReadIdempotence: N read-calls yield one result and leave
// captured state unchanged.
func TestPropertyReadIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		message := randString(rng)
		name := randString(rng)
		arg := randString(rng)
		n := rng.IntN(8) + 1

		p := capture.NewMessagePrinter(&message)
		g := capture.NewGreeter(name)
		before := message
		for range n {
			require.Equal(t, before, p.Call(capture.Unit{}))
			require.Equal(t, name+", "+arg, g.Call(arg))
			require.Equal(t, capture.GreetingText, capture.Greeting{}.Call(capture.Unit{}))
		}
		require.Equal(t, before, message)
	}
}

// TestPropertyModeConsistency: an Fn gives the same result in every mode.
func TestPropertyModeConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		name := randString(rng)
		arg := randString(rng)

		var f capture.Fn[string, string] = capture.NewGreeter(name)
		read := f.Call(arg)
		mut := f.CallMut(arg)
		consumed := f.CallOnce(arg)
		require.Equal(t, read, mut)
		require.Equal(t, read, consumed)
	}
}

// TestPropertyCounterExclusivity: every call adds exactly one delta.
func TestPropertyCounterExclusivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		counter := uint32(rng.IntN(1000))
		delta := uint32(rng.IntN(100))
		next := capture.NewCounter(&counter, &delta)

		calls := rng.IntN(16) + 1
		prev := counter
		for range calls {
			got := next.CallMut(capture.Unit{})
			require.Equal(t, prev+delta, got)
			prev = got
		}
		next.Discard()
		require.Equal(t, prev, counter)
	}
}

// TestPropertyCounterMatchesClosure: Counter and the equivalent function
// literal produce the same sequence.
func TestPropertyCounterMatchesClosure(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		start := uint32(rng.IntN(1000))
		delta := uint32(rng.IntN(100))
		n := rng.IntN(16)

		a, b := start, start
		explicit := capture.NewCounter(&a, &delta)
		literal := capture.Mut(func(capture.Unit) uint32 {
			b += delta
			return b
		})
		require.Equal(t, capture.Repeat[uint32](literal, n), capture.Repeat[uint32](explicit, n))
	}
}

// TestPropertyDoublerSum: CallOnce equals twice the plain sum.
func TestPropertyDoublerSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		values := make([]uint32, rng.IntN(32))
		var want uint32
		for i := range values {
			values[i] = uint32(rng.IntN(10000))
			want += values[i]
		}
		require.Equal(t, want*capture.DoubleFactor, capture.NewDoubler(values).CallOnce(capture.Unit{}))
	}
}

func TestConcurrentReadCalls(t *testing.T) {
	message := "Hi"
	p := capture.NewMessagePrinter(&message)
	g := capture.NewGreeter("Binboy")

	const goroutines = 64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	mismatches := make(chan string, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range 100 {
				if got := p.Call(capture.Unit{}); got != "Hi" {
					mismatches <- got
					return
				}
				if got := g.Call("You are awesome!"); got != "Binboy, You are awesome!" {
					mismatches <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(mismatches)
	require.Empty(t, mismatches)
}

func TestConcurrentDoublerTryCallOnce(t *testing.T) {
	transform := capture.NewDoubler([]uint32{0, 1, 2, 3, 4, 5})

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	results := make(chan uint32, goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			if v, err := transform.TryCallOnce(capture.Unit{}); err == nil {
				results <- v
			}
		}()
	}

	wg.Wait()
	close(results)

	require.Len(t, results, 1)
	require.Equal(t, uint32(30), <-results)
}
