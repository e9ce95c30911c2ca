// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

import "math/bits"

// Counter holds an exclusive reference to a counter and a shared reference
// to a delta, both owned elsewhere. Each call adds delta to the counter and
// returns the new value.
//
// Counter implements FnMut but not Fn: every call writes through the
// exclusive reference. While a Counter is live, the caller must not read or
// write *counter through any other path, must not write *delta, and must not
// call it from more than one goroutine. None of this is checked at run time.
//
// A step whose result would exceed math.MaxUint32 fails with ErrOverflow and
// leaves the counter unchanged. The zero Counter holds no references; calling
// it panics with ErrNilCapture. Use NewCounter.
type Counter struct {
	guard   once
	counter *uint32
	delta   *uint32
}

// NewCounter captures counter exclusively and delta by shared reference.
// Panics with ErrNilCapture if either is nil.
func NewCounter(counter, delta *uint32) *Counter {
	return &Counter{
		counter: mustCapture("Counter", "counter", counter),
		delta:   mustCapture("Counter", "delta", delta),
	}
}

func (c *Counter) step() (uint32, error) {
	counter := mustCapture("Counter", "counter", c.counter)
	delta := mustCapture("Counter", "delta", c.delta)
	next, carry := bits.Add32(*counter, *delta, 0)
	if carry != 0 {
		return *counter, overflowError("Counter")
	}
	*counter = next
	return next, nil
}

// CallMut advances the counter by delta and returns its new value.
// Panics with ErrConsumed after CallOnce, and with ErrOverflow if the
// counter would wrap.
func (c *Counter) CallMut(Unit) uint32 {
	c.guard.check("Counter")
	v, err := c.step()
	if err != nil {
		panic(err)
	}
	return v
}

// CallOnce advances the counter a final time and ends both borrows.
// The borrows end even when the step panics with ErrOverflow.
func (c *Counter) CallOnce(Unit) uint32 {
	c.guard.take("Counter")
	defer c.release()
	v, err := c.step()
	if err != nil {
		panic(err)
	}
	return v
}

// TryCallOnce is CallOnce returning ErrConsumed or ErrOverflow instead of
// panicking. The Counter is consumed in both the success and overflow cases.
func (c *Counter) TryCallOnce(Unit) (uint32, error) {
	if !c.guard.tryTake() {
		return 0, consumedError("Counter")
	}
	defer c.release()
	return c.step()
}

// Discard ends both borrows without advancing the counter.
func (c *Counter) Discard() {
	c.guard.discard()
	c.release()
}

func (c *Counter) release() {
	c.counter = nil
	c.delta = nil
}

var _ FnMut[Unit, uint32] = (*Counter)(nil)
