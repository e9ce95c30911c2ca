// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrConsumed is reported when a callable is invoked after its
	// consume-call, or consumed twice.
	ErrConsumed = ierrors.New("callable already consumed")

	// ErrNilCapture is reported when a reference capture is constructed
	// from a nil pointer.
	ErrNilCapture = ierrors.New("nil reference capture")

	// ErrOverflow is reported when a call's result does not fit in uint32.
	ErrOverflow = ierrors.New("uint32 overflow")
)

// consumedError names the variant that was reused.
func consumedError(variant string) error {
	return ierrors.Wrapf(ErrConsumed, "capture: %s", variant)
}

func overflowError(variant string) error {
	return ierrors.Wrapf(ErrOverflow, "capture: %s", variant)
}

// mustCapture panics with ErrNilCapture when ptr is nil.
// Lifetime and aliasing of non-nil referents remain the caller's contract.
func mustCapture[T any](variant, field string, ptr *T) *T {
	if ptr == nil {
		panic(ierrors.Wrapf(ErrNilCapture, "capture: %s.%s", variant, field))
	}
	return ptr
}
