// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo constructs one instance of every callable and drives it
// through its invocation modes.
package demo

import (
	"fmt"
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/rs/zerolog"

	"code.hybscloud.com/capture"
	"code.hybscloud.com/capture/internal/config"
)

// Report collects the values each callable produced.
type Report struct {
	Greeting string
	Message  string
	Greeter  string
	Counts   []uint32
	Counter  uint32
	Sum      uint32

	// Reuse is the error returned by the second consume attempt.
	Reuse error
}

// Run drives every callable with the inputs of cfg, writing one line per
// observable result to out.
func Run(cfg config.Scenario, out io.Writer, logger zerolog.Logger) (Report, error) {
	if err := config.Validate(cfg); err != nil {
		return Report{}, err
	}

	var r Report
	w := &lineWriter{out: out}

	r.Greeting = capture.InvokeOnce[capture.Unit, string](capture.Greeting{}, capture.Unit{})
	logger.Debug().Str("variant", "Greeting").Str("mode", "once").Msg("invoked")
	w.println(r.Greeting)

	message := cfg.Message
	printer := capture.NewMessagePrinter(&message)
	r.Message = capture.Invoke[capture.Unit, string](printer, capture.Unit{})
	logger.Debug().Str("variant", "MessagePrinter").Str("mode", "read").Msg("invoked")
	w.println(r.Message)

	greeter := capture.NewGreeter(cfg.Name)
	r.Greeter = capture.Invoke[string, string](greeter, cfg.Argument)
	logger.Debug().Str("variant", "Greeter").Str("mode", "read").Msg("invoked")
	w.println(r.Greeter)

	counter := cfg.Counter
	delta := cfg.Delta
	next := capture.NewCounter(&counter, &delta)
	r.Counts = capture.Repeat[uint32](next, cfg.Calls)
	next.Discard()
	r.Counter = counter
	logger.Debug().Str("variant", "Counter").Str("mode", "mut").Int("calls", cfg.Calls).Msg("invoked")
	for _, c := range r.Counts {
		w.println(c)
	}

	values := make([]uint32, len(cfg.Values))
	copy(values, cfg.Values)
	transform := capture.NewDoubler(values)
	r.Sum = capture.InvokeOnce[capture.Unit, uint32](transform, capture.Unit{})
	logger.Debug().Str("variant", "Doubler").Str("mode", "once").Msg("invoked")
	w.println(r.Sum)

	_, r.Reuse = transform.TryCallOnce(capture.Unit{})
	if !ierrors.Is(r.Reuse, capture.ErrConsumed) {
		return r, ierrors.Errorf("consumed Doubler accepted a second call: %v", r.Reuse)
	}
	logger.Debug().Err(r.Reuse).Str("variant", "Doubler").Msg("second call rejected")

	if w.err != nil {
		return r, ierrors.Wrap(w.err, "write results")
	}
	logger.Info().
		Str("greeting", r.Greeting).
		Str("message", r.Message).
		Str("greeter", r.Greeter).
		Uint32("counter", r.Counter).
		Uint32("sum", r.Sum).
		Msg("scenario complete")

	return r, nil
}

// lineWriter remembers the first write error.
type lineWriter struct {
	out io.Writer
	err error
}

func (w *lineWriter) println(v any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, v)
}
