// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

import (
	"math"

	"github.com/iotaledger/hive.go/lo"
)

// DoubleFactor is the fixed multiplier applied by Doubler.
const DoubleFactor = 2

// Doubler owns a sequence of integers. Its only call doubles every element
// and returns the sum, destroying the sequence.
//
// Doubler implements FnOnce only. Passing it where an FnMut or Fn is
// required does not compile; calling it twice panics with ErrConsumed.
type Doubler struct {
	guard  once
	values []uint32
}

// NewDoubler takes ownership of values. The caller must not use the slice
// afterwards.
func NewDoubler(values []uint32) *Doubler {
	return &Doubler{values: values}
}

// double widens before multiplying so a doubled element cannot wrap.
// It is a named function so lo.Map does not allocate a closure per call.
func double(v uint32) uint64 { return uint64(v) * DoubleFactor }

// drain sums the doubled elements and releases them, overflow or not.
func (d *Doubler) drain() (uint32, error) {
	doubled := lo.Map(d.values, double)
	d.values = nil

	var sum uint64
	for _, v := range doubled {
		sum += v
		if sum > math.MaxUint32 {
			return 0, overflowError("Doubler")
		}
	}
	return uint32(sum), nil
}

// CallOnce returns the sum of the doubled elements and releases them.
// Panics with ErrConsumed if the Doubler has already been used, and with
// ErrOverflow if the sum does not fit in uint32.
func (d *Doubler) CallOnce(Unit) uint32 {
	d.guard.take("Doubler")
	sum, err := d.drain()
	if err != nil {
		panic(err)
	}
	return sum
}

// TryCallOnce is CallOnce returning ErrConsumed or ErrOverflow instead of
// panicking.
func (d *Doubler) TryCallOnce(Unit) (uint32, error) {
	if !d.guard.tryTake() {
		return 0, consumedError("Doubler")
	}
	return d.drain()
}

// Discard releases the sequence without computing.
func (d *Doubler) Discard() {
	d.guard.discard()
	d.values = nil
}

// Consumed reports whether the Doubler has been called or discarded.
func (d *Doubler) Consumed() bool {
	return d.guard.consumed()
}

var _ FnOnce[Unit, uint32] = (*Doubler)(nil)
